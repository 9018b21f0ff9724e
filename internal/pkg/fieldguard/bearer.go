package fieldguard

import (
	"fmt"
	"strings"

	"github.com/shandysiswandi/fieldguard/internal/pkg/jwt"
)

// TokenVerifier verifies a signed token. jwt.Symmetric implements it.
type TokenVerifier interface {
	Verify(token string) (jwt.Claims, error)
}

// Bearer rejects a present value that is not "Bearer <token>" with a token
// accepted by verifier and granting every scope in scopes. It is meant for
// Header("Authorization"); pair it with Required to reject anonymous calls.
func Bearer(verifier TokenVerifier, scopes ...string) Validator[string] {
	return present(func(name, value string) (string, bool) {
		p := strings.Fields(value)
		if len(p) != 2 || !strings.EqualFold(p[0], "Bearer") {
			return fmt.Sprintf("'%s' carries an invalid bearer token", name), false
		}

		claims, err := verifier.Verify(p[1])
		if err != nil {
			return fmt.Sprintf("'%s' carries an invalid bearer token", name), false
		}

		for _, scope := range scopes {
			if !claims.HasScope(scope) {
				return fmt.Sprintf("'%s' bearer token lacks scope '%s'", name, scope), false
			}
		}
		return "", true
	})
}
