package fieldguard

import (
	"fmt"
	"net/textproto"
)

// Kind is the category of request data a Locator points at.
type Kind uint8

const (
	// KindParam is a path parameter matched by the router.
	KindParam Kind = iota + 1
	// KindQuery is a query string parameter.
	KindQuery
	// KindCookie is a request cookie.
	KindCookie
	// KindHeader is a request header.
	KindHeader
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindParam:
		return "param"
	case KindQuery:
		return "query"
	case KindCookie:
		return "cookie"
	case KindHeader:
		return "header"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Locator identifies one named field of a request.
//
// Locators are comparable and can be used as map keys. Header names are
// stored in canonical form, so Header("x-api-key") == Header("X-Api-Key").
type Locator struct {
	kind Kind
	name string
}

// Param locates a path parameter, e.g. "age" in "/cats/:age".
func Param(name string) Locator {
	return Locator{kind: KindParam, name: name}
}

// QueryParam locates a query parameter, e.g. "age" in "/cats?age=3".
func QueryParam(name string) Locator {
	return Locator{kind: KindQuery, name: name}
}

// Cookie locates a cookie by name.
func Cookie(name string) Locator {
	return Locator{kind: KindCookie, name: name}
}

// Header locates a request header. The name is matched case-insensitively.
func Header(name string) Locator {
	return Locator{kind: KindHeader, name: textproto.CanonicalMIMEHeaderKey(name)}
}

// Kind returns the category of the locator.
func (l Locator) Kind() Kind {
	return l.kind
}

// Name returns the field name. Header names are canonical.
func (l Locator) Name() string {
	return l.name
}

// String renders the locator as "kind:name".
func (l Locator) String() string {
	return fmt.Sprintf("%s:%s", l.kind, l.name)
}
