// Package lower converts an analyzed model into the generator input.
package lower

import "github.com/Ash-L2L/l2l-openapi/internal/models"

// Lower copies the model into an Ir. Methods keep their declaration order.
func Lower(model *models.Model) *models.Ir {
	methods := make([]models.Method, len(model.Methods))
	copy(methods, model.Methods)
	return &models.Ir{
		RefSchemaTypes: model.RefSchemaTypes,
		Methods:        methods,
		Ast:            model.Ast,
	}
}
