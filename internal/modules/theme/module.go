package theme

import (
	"go.uber.org/zap"

	"github.com/Nexora712/linkbio-backend/internal/modules/theme/application"
)

// Module represents the Theme module
type Module struct {
	resolver *application.Resolver
}

// NewModule creates and initializes the Theme module
func NewModule(logger *zap.Logger) *Module {
	return &Module{
		resolver: application.NewResolver(logger),
	}
}

// Resolver returns the theme resolver for use by other modules
func (m *Module) Resolver() *application.Resolver {
	return m.resolver
}
