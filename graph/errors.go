package graph

import "errors"

// ErrMalformedBase64 is returned by FromString when s is not valid
// unpadded standard base64.
var ErrMalformedBase64 = errors.New("graph: malformed base64 edge encoding")
