// Package xmlstream adds namespace resolution on top of xmltext.
//
// A Reader pulls tokens from an xmltext.Lexer, tracks namespace scopes and
// open elements, and decorates tag tokens with resolved qualified names.
// All other tokens pass through unchanged. Token data follows the lexer
// lifetime rule: it is valid until the next Advance.
package xmlstream
