package transport

import (
	"context"

	"google.golang.org/grpc"
)

const registryServiceName = "nameregistry.v1.RegistryService"

// RegistryServiceServer is the server API of the registry service.
type RegistryServiceServer interface {
	Commit(context.Context, *CommitRequest) (*ReceiptResponse, error)
	Reveal(context.Context, *RevealRequest) (*ReceiptResponse, error)
	Renew(context.Context, *RenewRequest) (*ReceiptResponse, error)
	UnlockDeposit(context.Context, *UnlockDepositRequest) (*ReceiptResponse, error)
	WithdrawFees(context.Context, *WithdrawFeesRequest) (*ReceiptResponse, error)
	Digest(context.Context, *DigestRequest) (*DigestResponse, error)
	ResolveName(context.Context, *ResolveNameRequest) (*ResolveNameResponse, error)
	Quote(context.Context, *QuoteRequest) (*QuoteResponse, error)
	Head(context.Context, *HeadRequest) (*HeadResponse, error)
}

// RegisterRegistryServiceServer registers srv on s.
func RegisterRegistryServiceServer(s grpc.ServiceRegistrar, srv RegistryServiceServer) {
	s.RegisterService(&registryServiceDesc, srv)
}

var registryServiceDesc = grpc.ServiceDesc{
	ServiceName: registryServiceName,
	HandlerType: (*RegistryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Commit", Handler: unaryHandler("Commit", RegistryServiceServer.Commit)},
		{MethodName: "Reveal", Handler: unaryHandler("Reveal", RegistryServiceServer.Reveal)},
		{MethodName: "Renew", Handler: unaryHandler("Renew", RegistryServiceServer.Renew)},
		{MethodName: "UnlockDeposit", Handler: unaryHandler("UnlockDeposit", RegistryServiceServer.UnlockDeposit)},
		{MethodName: "WithdrawFees", Handler: unaryHandler("WithdrawFees", RegistryServiceServer.WithdrawFees)},
		{MethodName: "Digest", Handler: unaryHandler("Digest", RegistryServiceServer.Digest)},
		{MethodName: "ResolveName", Handler: unaryHandler("ResolveName", RegistryServiceServer.ResolveName)},
		{MethodName: "Quote", Handler: unaryHandler("Quote", RegistryServiceServer.Quote)},
		{MethodName: "Head", Handler: unaryHandler("Head", RegistryServiceServer.Head)},
	},
	Streams: []grpc.StreamDesc{},
}

func fullMethod(method string) string {
	return "/" + registryServiceName + "/" + method
}

func unaryHandler[Req, Resp any](method string, call func(RegistryServiceServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(RegistryServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(RegistryServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// RegistryServiceClient calls the registry service using the JSON codec.
type RegistryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRegistryServiceClient(cc grpc.ClientConnInterface) *RegistryServiceClient {
	return &RegistryServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RegistryServiceClient) Commit(ctx context.Context, in *CommitRequest, opts ...grpc.CallOption) (*ReceiptResponse, error) {
	return invoke[ReceiptResponse](ctx, c.cc, "Commit", in, opts)
}

func (c *RegistryServiceClient) Reveal(ctx context.Context, in *RevealRequest, opts ...grpc.CallOption) (*ReceiptResponse, error) {
	return invoke[ReceiptResponse](ctx, c.cc, "Reveal", in, opts)
}

func (c *RegistryServiceClient) Renew(ctx context.Context, in *RenewRequest, opts ...grpc.CallOption) (*ReceiptResponse, error) {
	return invoke[ReceiptResponse](ctx, c.cc, "Renew", in, opts)
}

func (c *RegistryServiceClient) UnlockDeposit(ctx context.Context, in *UnlockDepositRequest, opts ...grpc.CallOption) (*ReceiptResponse, error) {
	return invoke[ReceiptResponse](ctx, c.cc, "UnlockDeposit", in, opts)
}

func (c *RegistryServiceClient) WithdrawFees(ctx context.Context, in *WithdrawFeesRequest, opts ...grpc.CallOption) (*ReceiptResponse, error) {
	return invoke[ReceiptResponse](ctx, c.cc, "WithdrawFees", in, opts)
}

func (c *RegistryServiceClient) Digest(ctx context.Context, in *DigestRequest, opts ...grpc.CallOption) (*DigestResponse, error) {
	return invoke[DigestResponse](ctx, c.cc, "Digest", in, opts)
}

func (c *RegistryServiceClient) ResolveName(ctx context.Context, in *ResolveNameRequest, opts ...grpc.CallOption) (*ResolveNameResponse, error) {
	return invoke[ResolveNameResponse](ctx, c.cc, "ResolveName", in, opts)
}

func (c *RegistryServiceClient) Quote(ctx context.Context, in *QuoteRequest, opts ...grpc.CallOption) (*QuoteResponse, error) {
	return invoke[QuoteResponse](ctx, c.cc, "Quote", in, opts)
}

func (c *RegistryServiceClient) Head(ctx context.Context, in *HeadRequest, opts ...grpc.CallOption) (*HeadResponse, error) {
	return invoke[HeadResponse](ctx, c.cc, "Head", in, opts)
}
