// Package sidename detects left/right naming conventions in identifiers
// and generates the opposite-side sibling name.
//
// Recognized token forms, in priority order:
//
//	separator + word    Smile_Left, Smile.left, Smile-RIGHT
//	separator + letter  Smile_L, Smile.l, Smile-r
//	bare word suffix    SmileLeft, SmileRIGHT (case-sensitive)
//	bare letter suffix  SmileL, SmileR (uppercase only)
//	leading forms       L_Smile, Left.Smile (separator required)
//
// Detection is unambiguous by construction: if the leading and trailing
// ends of a name claim conflicting sides (e.g. "L_BrowR"), the result is
// SideAmbiguous rather than a silent pick. Mirrored names preserve the
// original token's case style and separator.
//
// The package is pure string analysis and knows nothing about geometry.
package sidename
