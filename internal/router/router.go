// Package router maps named view states to in-app hrefs and back.
package router

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/gorilla/mux"
)

// State names a view. The string values are the route names.
type State string

const (
	StateNamespaceList               State = "namespacelist"
	StatePodList                     State = "podlist"
	StateJobList                     State = "joblist"
	StateJobDetail                   State = "jobdetail"
	StateReplicationControllerList   State = "replicationcontrollerlist"
	StateReplicationControllerDetail State = "replicationcontrollerdetail"
	StateDaemonSetList               State = "daemonsetlist"
	StateDaemonSetDetail             State = "daemonsetdetail"
	StateDeploymentList              State = "deploymentlist"
	StateDeploymentDetail            State = "deploymentdetail"
	StateLogs                        State = "logs"
)

// Param keys.
const (
	ParamNamespace             = "namespace"
	ParamName                  = "name"
	ParamPod                   = "pod"
	ParamContainer             = "container"
	ParamReplicationController = "replicationcontroller"
	ParamPrevious              = "previous"
)

// HrefPrefix starts every in-app link.
const HrefPrefix = "#!"

var routeTable = []struct {
	state State
	path  string
}{
	{StateNamespaceList, "/namespace"},
	{StatePodList, "/pod/{namespace:[^/]*}"},
	{StateJobList, "/job/{namespace:[^/]*}"},
	{StateJobDetail, "/job/{namespace}/{name}"},
	{StateReplicationControllerList, "/replicationcontroller/{namespace:[^/]*}"},
	{StateReplicationControllerDetail, "/replicationcontroller/{namespace}/{name}"},
	{StateDaemonSetList, "/daemonset/{namespace:[^/]*}"},
	{StateDaemonSetDetail, "/daemonset/{namespace}/{name}"},
	{StateDeploymentList, "/deployment/{namespace:[^/]*}"},
	{StateDeploymentDetail, "/deployment/{namespace}/{name}"},
	{StateLogs, "/log/{namespace}/{pod}"},
}

// Params are the route parameters of one navigation. Treat as immutable.
type Params map[string]string

// NewParams builds Params from key/value pairs. Empty values are dropped.
func NewParams(kv ...string) Params {
	p := make(Params, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			p[kv[i]] = kv[i+1]
		}
	}
	return p
}

// StateParams identifies a resource for a detail state.
func StateParams(namespace, name string) Params {
	return NewParams(ParamNamespace, namespace, ParamName, name)
}

// LogsParams identifies the pod whose logs are shown. rc may be empty.
func LogsParams(namespace, rc, pod string) Params {
	return NewParams(ParamNamespace, namespace, ParamReplicationController, rc, ParamPod, pod)
}

// Get returns the value for key, or "" when absent.
func (p Params) Get(key string) string {
	return p[key]
}

// Namespace returns the namespace param; "" means all namespaces.
func (p Params) Namespace() string {
	return p[ParamNamespace]
}

// With returns a copy of p with key set to value (removed when empty).
func (p Params) With(key, value string) Params {
	out := make(Params, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	if value == "" {
		delete(out, key)
	} else {
		out[key] = value
	}
	return out
}

// Route is a resolved navigation target.
type Route struct {
	State  State
	Params Params
}

// Router holds the named route table.
type Router struct {
	mux *mux.Router
}

// New builds the route table.
func New() *Router {
	r := mux.NewRouter()
	for _, rt := range routeTable {
		r.Path(rt.path).Name(string(rt.state))
	}
	return &Router{mux: r}
}

// Href builds the in-app link for state. Params that are not path
// variables go to the query string. Returns "" when state is unknown or a
// required param is missing.
func (r *Router) Href(state State, params Params) string {
	route := r.mux.Get(string(state))
	if route == nil {
		return ""
	}
	names, err := route.GetVarNames()
	if err != nil {
		return ""
	}
	pairs := make([]string, 0, len(names)*2)
	isVar := make(map[string]bool, len(names))
	for _, n := range names {
		pairs = append(pairs, n, params.Get(n))
		isVar[n] = true
	}
	u, err := route.URLPath(pairs...)
	if err != nil {
		return ""
	}

	query := url.Values{}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !isVar[k] && params[k] != "" {
			query.Set(k, params[k])
		}
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return HrefPrefix + u.String()
}

// Match parses an href produced by Href back into a Route.
func (r *Router) Match(href string) (Route, error) {
	raw := strings.TrimPrefix(href, HrefPrefix)
	u, err := url.Parse(raw)
	if err != nil {
		return Route{}, fmt.Errorf("invalid href %q: %w", href, err)
	}
	req := &http.Request{Method: http.MethodGet, URL: u}

	var match mux.RouteMatch
	if !r.mux.Match(req, &match) || match.Route == nil {
		return Route{}, fmt.Errorf("no route for %q", href)
	}

	params := make(Params, len(match.Vars))
	for k, v := range u.Query() {
		if len(v) > 0 && v[0] != "" {
			params[k] = v[0]
		}
	}
	for k, v := range match.Vars {
		if v != "" {
			params[k] = v
		}
	}
	return Route{State: State(match.Route.GetName()), Params: params}, nil
}
