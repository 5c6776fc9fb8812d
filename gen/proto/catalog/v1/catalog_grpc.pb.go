// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: catalog/v1/catalog.proto

package catalogv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	CatalogIntakeService_SubmitBatch_FullMethodName    = "/catalog.v1.CatalogIntakeService/SubmitBatch"
	CatalogIntakeService_GetJob_FullMethodName         = "/catalog.v1.CatalogIntakeService/GetJob"
	CatalogIntakeService_ExportProducts_FullMethodName = "/catalog.v1.CatalogIntakeService/ExportProducts"
)

// CatalogIntakeServiceClient is the client API for CatalogIntakeService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// CatalogIntakeService accepts photo batches, reports job progress, and
// exports the catalog.
type CatalogIntakeServiceClient interface {
	// SubmitBatch registers an upload job and starts processing in the
	// background. The response carries the job id to poll.
	SubmitBatch(ctx context.Context, in *SubmitBatchRequest, opts ...grpc.CallOption) (*SubmitBatchResponse, error)
	// GetJob returns the current counters and status of an upload job.
	GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error)
	// ExportProducts returns an XLSX snapshot of the catalog.
	ExportProducts(ctx context.Context, in *ExportProductsRequest, opts ...grpc.CallOption) (*ExportProductsResponse, error)
}

type catalogIntakeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogIntakeServiceClient(cc grpc.ClientConnInterface) CatalogIntakeServiceClient {
	return &catalogIntakeServiceClient{cc}
}

func (c *catalogIntakeServiceClient) SubmitBatch(ctx context.Context, in *SubmitBatchRequest, opts ...grpc.CallOption) (*SubmitBatchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitBatchResponse)
	err := c.cc.Invoke(ctx, CatalogIntakeService_SubmitBatch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogIntakeServiceClient) GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetJobResponse)
	err := c.cc.Invoke(ctx, CatalogIntakeService_GetJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogIntakeServiceClient) ExportProducts(ctx context.Context, in *ExportProductsRequest, opts ...grpc.CallOption) (*ExportProductsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportProductsResponse)
	err := c.cc.Invoke(ctx, CatalogIntakeService_ExportProducts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CatalogIntakeServiceServer is the server API for CatalogIntakeService service.
// All implementations must embed UnimplementedCatalogIntakeServiceServer
// for forward compatibility.
//
// CatalogIntakeService accepts photo batches, reports job progress, and
// exports the catalog.
type CatalogIntakeServiceServer interface {
	// SubmitBatch registers an upload job and starts processing in the
	// background. The response carries the job id to poll.
	SubmitBatch(context.Context, *SubmitBatchRequest) (*SubmitBatchResponse, error)
	// GetJob returns the current counters and status of an upload job.
	GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error)
	// ExportProducts returns an XLSX snapshot of the catalog.
	ExportProducts(context.Context, *ExportProductsRequest) (*ExportProductsResponse, error)
	mustEmbedUnimplementedCatalogIntakeServiceServer()
}

// UnimplementedCatalogIntakeServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCatalogIntakeServiceServer struct{}

func (UnimplementedCatalogIntakeServiceServer) SubmitBatch(context.Context, *SubmitBatchRequest) (*SubmitBatchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitBatch not implemented")
}
func (UnimplementedCatalogIntakeServiceServer) GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetJob not implemented")
}
func (UnimplementedCatalogIntakeServiceServer) ExportProducts(context.Context, *ExportProductsRequest) (*ExportProductsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportProducts not implemented")
}
func (UnimplementedCatalogIntakeServiceServer) mustEmbedUnimplementedCatalogIntakeServiceServer() {}
func (UnimplementedCatalogIntakeServiceServer) testEmbeddedByValue()                              {}

// UnsafeCatalogIntakeServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CatalogIntakeServiceServer will
// result in compilation errors.
type UnsafeCatalogIntakeServiceServer interface {
	mustEmbedUnimplementedCatalogIntakeServiceServer()
}

func RegisterCatalogIntakeServiceServer(s grpc.ServiceRegistrar, srv CatalogIntakeServiceServer) {
	// If the following call pancis, it indicates UnimplementedCatalogIntakeServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CatalogIntakeService_ServiceDesc, srv)
}

func _CatalogIntakeService_SubmitBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitBatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogIntakeServiceServer).SubmitBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogIntakeService_SubmitBatch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogIntakeServiceServer).SubmitBatch(ctx, req.(*SubmitBatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogIntakeService_GetJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogIntakeServiceServer).GetJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogIntakeService_GetJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogIntakeServiceServer).GetJob(ctx, req.(*GetJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogIntakeService_ExportProducts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportProductsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogIntakeServiceServer).ExportProducts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogIntakeService_ExportProducts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CatalogIntakeServiceServer).ExportProducts(ctx, req.(*ExportProductsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CatalogIntakeService_ServiceDesc is the grpc.ServiceDesc for CatalogIntakeService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CatalogIntakeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "catalog.v1.CatalogIntakeService",
	HandlerType: (*CatalogIntakeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitBatch",
			Handler:    _CatalogIntakeService_SubmitBatch_Handler,
		},
		{
			MethodName: "GetJob",
			Handler:    _CatalogIntakeService_GetJob_Handler,
		},
		{
			MethodName: "ExportProducts",
			Handler:    _CatalogIntakeService_ExportProducts_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/catalog.proto",
}
