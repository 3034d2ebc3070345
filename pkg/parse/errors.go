package parse

import "errors"

// ErrParse is returned for any input the parsers cannot turn into a tree.
var ErrParse = errors.New("parse error")
