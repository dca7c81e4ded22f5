// Package validator provides rule-based validation with translatable errors.
//
// Rules are plain values built by constructor functions and evaluated by
// [Apply], which collects every failing rule into [ValidationErrors]:
//
//	err := validator.Apply(
//	    validator.RequiredString("name", in.Name),
//	    validator.RequiredString("email", in.Email),
//	    validator.Email("email", in.Email),
//	)
//	if ve := validator.ExtractValidationErrors(err); ve != nil {
//	    // ve.Get("email") -> "Please enter a valid email address"
//	}
//
// Every error carries a TranslationKey and TranslationValues so messages can
// be localised later with [ValidationErrors.Translate].
package validator
