package dspgraph

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/google/uuid"
)

// Identity identifies a kind of graph. The zero value is not a valid
// identity.
type Identity [16]byte

// NewIdentity returns a new random identity.
func NewIdentity() Identity {
	return Identity(uuid.New())
}

// IdentityOf derives identity from a stable name. The same name always
// results in the same identity.
func IdentityOf(name string) Identity {
	return Identity(uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)))
}

// FuncIdentity derives identity from the symbol name of the function.
// It panics if fn is not a function.
func FuncIdentity(fn interface{}) Identity {
	return IdentityOf(funcName(fn))
}

// IsValid returns false for zero identity.
func (id Identity) IsValid() bool {
	return id != Identity{}
}

func (id Identity) String() string {
	return uuid.UUID(id).String()
}

func funcName(fn interface{}) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		panic(fmt.Sprintf("dspgraph: %T is not a function", fn))
	}
	if f := runtime.FuncForPC(v.Pointer()); f != nil {
		return f.Name()
	}
	return v.Type().String()
}
