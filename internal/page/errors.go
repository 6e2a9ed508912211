package page

import "errors"

var ErrParse = errors.New("page: parse template")
