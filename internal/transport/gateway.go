package transport

import (
	"context"
	"fmt"
	"net/http"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var gatewayMarshaler = &gwruntime.JSONBuiltin{}

// Gateway serves the REST routes by forwarding requests to the gRPC service.
type Gateway struct {
	client *RegistryServiceClient
	logger *zap.Logger
}

func NewGateway(client *RegistryServiceClient, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{client: client, logger: logger}
}

// Register adds the REST routes to mux.
func (g *Gateway) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		handler gwruntime.HandlerFunc
	}{
		{http.MethodPost, "/v1/commit", postRoute(g, g.client.Commit)},
		{http.MethodPost, "/v1/reveal", postRoute(g, g.client.Reveal)},
		{http.MethodPost, "/v1/renew", postRoute(g, g.client.Renew)},
		{http.MethodPost, "/v1/unlock", postRoute(g, g.client.UnlockDeposit)},
		{http.MethodPost, "/v1/withdraw", postRoute(g, g.client.WithdrawFees)},
		{http.MethodPost, "/v1/digest", postRoute(g, g.client.Digest)},
		{http.MethodGet, "/v1/names/{address}", getRoute(g, g.client.ResolveName, func(params map[string]string) *ResolveNameRequest {
			return &ResolveNameRequest{Address: params["address"]}
		})},
		{http.MethodGet, "/v1/quote/{name}", getRoute(g, g.client.Quote, func(params map[string]string) *QuoteRequest {
			return &QuoteRequest{Name: params["name"]}
		})},
		{http.MethodGet, "/v1/head", getRoute(g, g.client.Head, func(map[string]string) *HeadRequest {
			return &HeadRequest{}
		})},
	}

	for _, route := range routes {
		if err := mux.HandlePath(route.method, route.pattern, route.handler); err != nil {
			return fmt.Errorf("register %s %s: %w", route.method, route.pattern, err)
		}
	}
	return nil
}

func postRoute[Req, Resp any](g *Gateway, call func(context.Context, *Req, ...grpc.CallOption) (*Resp, error)) gwruntime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		in := new(Req)
		if err := gatewayMarshaler.NewDecoder(r.Body).Decode(in); err != nil {
			g.writeError(w, status.Errorf(codes.InvalidArgument, "decode request: %v", err), nil)
			return
		}
		forward(g, w, r, call, in)
	}
}

func getRoute[Req, Resp any](g *Gateway, call func(context.Context, *Req, ...grpc.CallOption) (*Resp, error), build func(params map[string]string) *Req) gwruntime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		forward(g, w, r, call, build(params))
	}
}

func forward[Req, Resp any](g *Gateway, w http.ResponseWriter, r *http.Request, call func(context.Context, *Req, ...grpc.CallOption) (*Resp, error), in *Req) {
	var trailer metadata.MD
	out, err := call(r.Context(), in, grpc.Trailer(&trailer))
	if err != nil {
		g.writeError(w, err, trailer)
		return
	}
	g.writeJSON(w, http.StatusOK, out)
}

func (g *Gateway) writeError(w http.ResponseWriter, err error, trailer metadata.MD) {
	st := status.Convert(err)
	body := ErrorResponse{
		Code:    int32(st.Code()),
		Message: st.Message(),
	}
	if reasons := trailer.Get(reasonKey); len(reasons) > 0 {
		body.Reason = reasons[0]
	}
	g.writeJSON(w, gwruntime.HTTPStatusFromCode(st.Code()), body)
}

func (g *Gateway) writeJSON(w http.ResponseWriter, code int, v any) {
	payload, err := gatewayMarshaler.Marshal(v)
	if err != nil {
		g.logger.Error("marshal response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", gatewayMarshaler.ContentType(v))
	w.WriteHeader(code)
	if _, err := w.Write(payload); err != nil {
		g.logger.Debug("write response", zap.Error(err))
	}
}
