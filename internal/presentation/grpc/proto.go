package grpc

// proto.go defines the gRPC server interface derived from
// crediflow/calc/v1/calc.proto. This file serves as a stand-in for
// buf-generated code; messages ride the registered JSON codec.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/crediflow/calc-service/internal/application/dto"
)

// ListProductsRequest has no fields; the full catalog is always returned.
type ListProductsRequest struct{}

// ListProductsResponse carries the loaded credit catalog.
type ListProductsResponse struct {
	Products []dto.ProductResponse `json:"products"`
}

// CalculateRequest wraps the calculation input.
type CalculateRequest struct {
	dto.CalculateRequest
}

// CalculateResponse wraps the calculation result.
type CalculateResponse struct {
	dto.CalculationResponse
}

// CalculatorServiceServer is the server API for CalculatorService.
type CalculatorServiceServer interface {
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	Calculate(context.Context, *CalculateRequest) (*CalculateResponse, error)
	mustEmbedUnimplementedCalculatorServiceServer()
}

// UnimplementedCalculatorServiceServer provides forward-compatible default
// implementations.
type UnimplementedCalculatorServiceServer struct{}

func (UnimplementedCalculatorServiceServer) ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListProducts not implemented")
}
func (UnimplementedCalculatorServiceServer) Calculate(context.Context, *CalculateRequest) (*CalculateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Calculate not implemented")
}
func (UnimplementedCalculatorServiceServer) mustEmbedUnimplementedCalculatorServiceServer() {}

// RegisterCalculatorServiceServer registers the server implementation.
func RegisterCalculatorServiceServer(s *grpclib.Server, srv CalculatorServiceServer) {
	s.RegisterService(&_CalculatorService_serviceDesc, srv)
}

var _CalculatorService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "crediflow.calc.v1.CalculatorService",
	HandlerType: (*CalculatorServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ListProducts", Handler: _CalculatorService_ListProducts_Handler},
		{MethodName: "Calculate", Handler: _CalculatorService_Calculate_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _CalculatorService_ListProducts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListProductsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServiceServer).ListProducts(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/crediflow.calc.v1.CalculatorService/ListProducts",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServiceServer).ListProducts(ctx, req.(*ListProductsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalculatorService_Calculate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CalculateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServiceServer).Calculate(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/crediflow.calc.v1.CalculatorService/Calculate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServiceServer).Calculate(ctx, req.(*CalculateRequest))
	}
	return interceptor(ctx, in, info, handler)
}
