package abbrevgo

import "errors"

var (
	// ErrKeywordWhitespace is the panic value wrapped when a keyword
	// name contains whitespace. Keyword names must be single tokens.
	ErrKeywordWhitespace = errors.New("keyword name contains whitespace")

	// ErrZeroLoaderValue is the panic value wrapped when a lazy loader
	// returns its type's zero value. Loaders are expected to succeed.
	ErrZeroLoaderValue = errors.New("lazy loader returned zero value")
)
