package handler

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// bindCreateJSON binds a create request body. Fields the request type does
// not declare, such as is_deleted, are rejected instead of ignored.
func bindCreateJSON(c *gin.Context, obj interface{}) error {
	if c.Request == nil || c.Request.Body == nil {
		return errors.New("empty request body")
	}
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(obj); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(obj)
}
