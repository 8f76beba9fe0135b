package grpc

// proto.go defines the gRPC server interface derived from neupi/recommendation/v1/recommendation.proto.
// This file serves as a stand-in for buf-generated code. Once `buf generate` is run,
// replace this file with the import from github.com/MradulDixit-A/neupi-api/api/gen/go/neupi/recommendation/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RecommendationServiceServer is the server API for RecommendationService.
// It mirrors the proto-generated interface from neupi.recommendation.v1.RecommendationService.
type RecommendationServiceServer interface {
	RecommendCards(context.Context, *RecommendCardsRequest) (*RecommendCardsResponse, error)
	GetHealthScore(context.Context, *GetHealthScoreRequest) (*GetHealthScoreResponse, error)
	AnalyzeProfile(context.Context, *AnalyzeProfileRequest) (*AnalyzeProfileResponse, error)
	mustEmbedUnimplementedRecommendationServiceServer()
}

// UnimplementedRecommendationServiceServer provides forward-compatible default implementations.
type UnimplementedRecommendationServiceServer struct{}

func (UnimplementedRecommendationServiceServer) RecommendCards(context.Context, *RecommendCardsRequest) (*RecommendCardsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecommendCards not implemented")
}
func (UnimplementedRecommendationServiceServer) GetHealthScore(context.Context, *GetHealthScoreRequest) (*GetHealthScoreResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetHealthScore not implemented")
}
func (UnimplementedRecommendationServiceServer) AnalyzeProfile(context.Context, *AnalyzeProfileRequest) (*AnalyzeProfileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AnalyzeProfile not implemented")
}
func (UnimplementedRecommendationServiceServer) mustEmbedUnimplementedRecommendationServiceServer() {}

// RegisterRecommendationServiceServer registers the RecommendationServiceServer with the gRPC server.
func RegisterRecommendationServiceServer(s *grpclib.Server, srv RecommendationServiceServer) {
	s.RegisterService(&_RecommendationService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _RecommendationService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "neupi.recommendation.v1.RecommendationService",
	HandlerType: (*RecommendationServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "RecommendCards", Handler: _RecommendationService_RecommendCards_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "GetHealthScore", Handler: _RecommendationService_GetHealthScore_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "AnalyzeProfile", Handler: _RecommendationService_AnalyzeProfile_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _RecommendationService_RecommendCards_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecommendCardsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecommendationServiceServer).RecommendCards(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/neupi.recommendation.v1.RecommendationService/RecommendCards",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RecommendationServiceServer).RecommendCards(ctx, req.(*RecommendCardsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _RecommendationService_GetHealthScore_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetHealthScoreRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecommendationServiceServer).GetHealthScore(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/neupi.recommendation.v1.RecommendationService/GetHealthScore",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RecommendationServiceServer).GetHealthScore(ctx, req.(*GetHealthScoreRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _RecommendationService_AnalyzeProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RecommendationServiceServer).AnalyzeProfile(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/neupi.recommendation.v1.RecommendationService/AnalyzeProfile",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RecommendationServiceServer).AnalyzeProfile(ctx, req.(*AnalyzeProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}
