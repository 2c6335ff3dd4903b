package discogs

import (
	"fmt"
	"net/http"
)

// Authenticator applies credentials to an outgoing request. The client
// never inspects the secret material; it only forwards the request.
type Authenticator interface {
	Apply(req *http.Request)
}

// TokenAuth authenticates with a personal access token.
type TokenAuth struct {
	Token string
}

func (a TokenAuth) Apply(req *http.Request) {
	req.Header.Set("Authorization", "Discogs token="+a.Token)
}

// KeySecretAuth authenticates with a consumer key/secret pair.
type KeySecretAuth struct {
	Key    string
	Secret string
}

func (a KeySecretAuth) Apply(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Discogs key=%s, secret=%s", a.Key, a.Secret))
}

// NoAuth issues unauthenticated requests. Discogs serves these with a
// reduced rate budget; useful for tests and public data.
type NoAuth struct{}

func (NoAuth) Apply(*http.Request) {}
