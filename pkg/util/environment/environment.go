package environment

// Application Environment name
const (
	Development = "development"
	Test        = "test"
	E2E         = "e2e"
	Staging     = "staging"
	Production  = "production"
)

// IsProduction reports whether env is a deployed environment.
func IsProduction(env string) bool {
	return env == Staging || env == Production
}
