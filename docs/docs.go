package docs

import "github.com/swaggo/swag"

// Lookup returns the registered Swagger spec for an engine's docs instance.
func Lookup(instance string) (*swag.Spec, bool) {
	switch instance {
	case SwaggerInfoanalytics.InstanceName():
		return SwaggerInfoanalytics, true
	case SwaggerInforeporting.InstanceName():
		return SwaggerInforeporting, true
	default:
		return nil, false
	}
}
