package fnwa

import (
	"net/http"

	"github.com/advdv/bfunc/fnenv"
	"github.com/carlmjohnson/requests"
)

// Runtime provides access to app-scoped configuration. Inject this into
// handler constructors via fx instead of re-reading the process environment.
//
// Example:
//
//	type Handlers struct {
//	    rt *fnwa.Runtime[Env]
//	}
//
//	func (h *Handlers) Handle(c *bfunc.Context) (any, error) {
//	    var users map[string]any
//	    if err := h.rt.NewAPIRequest().Path("/v1/users").ToJSON(&users).Fetch(context.Background()); err != nil {
//	        return nil, err
//	    }
//	    return c.Response().JSON(users), nil
//	}
type Runtime[E Environment] struct {
	env      E
	platform fnenv.Platform
	client   *http.Client
}

// NewRuntime creates a new Runtime with the given dependencies.
func NewRuntime[E Environment](env E, platform fnenv.Platform) *Runtime[E] {
	return &Runtime[E]{
		env:      env,
		platform: platform,
		client:   &http.Client{},
	}
}

// Env returns the serving environment configuration.
func (r *Runtime[E]) Env() E {
	return r.env
}

// Platform returns the platform-supplied configuration.
func (r *Runtime[E]) Platform() fnenv.Platform {
	return r.platform
}

// NewAPIRequest returns a request builder preconfigured for the platform API:
// base URL from the configured endpoint, project and key headers applied. The
// platform API itself stays an external collaborator; this is the only
// outbound surface the library offers.
func (r *Runtime[E]) NewAPIRequest() *requests.Builder {
	return requests.
		URL(r.platform.APIEndpoint).
		Client(r.client).
		Header("x-appwrite-project", r.platform.ProjectID).
		Header("x-appwrite-key", r.platform.APIKey).
		ContentType("application/json")
}
