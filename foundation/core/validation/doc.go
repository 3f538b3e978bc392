// Package validation provides composable validators whose failures convert
// to foundation errors with code VALIDATION_FAILED.
//
//	chain := validation.NewChain(
//		validation.Required("width"),
//		validation.OneOf("width", "16", "32", "64"),
//	).StopOnFirstError(true)
//
//	if err := chain.Validate(width).ToError(); err != nil {
//		return err
//	}
package validation
