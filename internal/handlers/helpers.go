package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gmbtravels/internal/repositories/interfaces"
	"gmbtravels/internal/utils"
)

// pathID parses the :id path parameter. On failure it writes the 400
// response and returns false.
func pathID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidID)
		return primitive.NilObjectID, false
	}
	return id, true
}

// repoError maps repository failures to the right response, keeping
// the not-found case a 404 instead of a 500.
func repoError(c *gin.Context, err error, resource string) {
	if errors.Is(err, interfaces.ErrNotFound) {
		utils.NotFoundResponse(c, resource)
		return
	}
	utils.InternalServerErrorResponse(c)
}

func currentUsername(c *gin.Context) string {
	return c.GetString("username")
}

func primitiveFromParam(c *gin.Context, name string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Param(name))
}

// optionalObjectID parses a hex id that may be empty. On malformed
// input it writes the 400 response and returns false.
func optionalObjectID(c *gin.Context, hex string) (primitive.ObjectID, bool) {
	if hex == "" {
		return primitive.NilObjectID, true
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		utils.BadRequestResponse(c, utils.ErrInvalidID)
		return primitive.NilObjectID, false
	}
	return id, true
}
