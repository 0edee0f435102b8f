package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	AuthService        = "portal.Auth"
	SubmissionsService = "portal.Submissions"
	OrganizerService   = "portal.Organizer"
)

func fullMethod(service, method string) string {
	return "/" + service + "/" + method
}

func unary[Req, Res any](service, method string, call func(srv interface{}, ctx context.Context, req *Req) (*Res, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv, ctx, in)
			}

			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(service, method)}
			return interceptor(ctx, in, info, func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv, ctx, req.(*Req))
			})
		},
	}
}

func invoke[Res any](ctx context.Context, cc grpc.ClientConnInterface, service, method string, in interface{}, opts ...grpc.CallOption) (*Res, error) {
	out := new(Res)
	if err := cc.Invoke(ctx, fullMethod(service, method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Auth

type AuthServer interface {
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
}

type UnimplementedAuthServer struct{}

func (UnimplementedAuthServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}

var AuthServiceDesc = grpc.ServiceDesc{
	ServiceName: AuthService,
	HandlerType: (*AuthServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(AuthService, "Login", func(srv interface{}, ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
			return srv.(AuthServer).Login(ctx, req)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "portal.proto",
}

func RegisterAuthServer(s grpc.ServiceRegistrar, srv AuthServer) {
	s.RegisterService(&AuthServiceDesc, srv)
}

type AuthClient interface {
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
}

type authClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthClient(cc grpc.ClientConnInterface) AuthClient {
	return &authClient{cc}
}

func (c *authClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, AuthService, "Login", in, opts...)
}

// Submissions

type SubmissionsServer interface {
	ListSubmissions(context.Context, *Empty) (*ListSubmissionsResponse, error)
	GetRankings(context.Context, *Empty) (*RankingsResponse, error)
	GetDashboard(context.Context, *Empty) (*DashboardResponse, error)
	SaveSubmission(context.Context, *SaveSubmissionRequest) (*SubmissionResponse, error)
}

type UnimplementedSubmissionsServer struct{}

func (UnimplementedSubmissionsServer) ListSubmissions(context.Context, *Empty) (*ListSubmissionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSubmissions not implemented")
}

func (UnimplementedSubmissionsServer) GetRankings(context.Context, *Empty) (*RankingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRankings not implemented")
}

func (UnimplementedSubmissionsServer) GetDashboard(context.Context, *Empty) (*DashboardResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetDashboard not implemented")
}

func (UnimplementedSubmissionsServer) SaveSubmission(context.Context, *SaveSubmissionRequest) (*SubmissionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SaveSubmission not implemented")
}

var SubmissionsServiceDesc = grpc.ServiceDesc{
	ServiceName: SubmissionsService,
	HandlerType: (*SubmissionsServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(SubmissionsService, "ListSubmissions", func(srv interface{}, ctx context.Context, req *Empty) (*ListSubmissionsResponse, error) {
			return srv.(SubmissionsServer).ListSubmissions(ctx, req)
		}),
		unary(SubmissionsService, "GetRankings", func(srv interface{}, ctx context.Context, req *Empty) (*RankingsResponse, error) {
			return srv.(SubmissionsServer).GetRankings(ctx, req)
		}),
		unary(SubmissionsService, "GetDashboard", func(srv interface{}, ctx context.Context, req *Empty) (*DashboardResponse, error) {
			return srv.(SubmissionsServer).GetDashboard(ctx, req)
		}),
		unary(SubmissionsService, "SaveSubmission", func(srv interface{}, ctx context.Context, req *SaveSubmissionRequest) (*SubmissionResponse, error) {
			return srv.(SubmissionsServer).SaveSubmission(ctx, req)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "portal.proto",
}

func RegisterSubmissionsServer(s grpc.ServiceRegistrar, srv SubmissionsServer) {
	s.RegisterService(&SubmissionsServiceDesc, srv)
}

type SubmissionsClient interface {
	ListSubmissions(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListSubmissionsResponse, error)
	GetRankings(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*RankingsResponse, error)
	GetDashboard(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*DashboardResponse, error)
	SaveSubmission(ctx context.Context, in *SaveSubmissionRequest, opts ...grpc.CallOption) (*SubmissionResponse, error)
}

type submissionsClient struct {
	cc grpc.ClientConnInterface
}

func NewSubmissionsClient(cc grpc.ClientConnInterface) SubmissionsClient {
	return &submissionsClient{cc}
}

func (c *submissionsClient) ListSubmissions(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListSubmissionsResponse, error) {
	return invoke[ListSubmissionsResponse](ctx, c.cc, SubmissionsService, "ListSubmissions", in, opts...)
}

func (c *submissionsClient) GetRankings(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*RankingsResponse, error) {
	return invoke[RankingsResponse](ctx, c.cc, SubmissionsService, "GetRankings", in, opts...)
}

func (c *submissionsClient) GetDashboard(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*DashboardResponse, error) {
	return invoke[DashboardResponse](ctx, c.cc, SubmissionsService, "GetDashboard", in, opts...)
}

func (c *submissionsClient) SaveSubmission(ctx context.Context, in *SaveSubmissionRequest, opts ...grpc.CallOption) (*SubmissionResponse, error) {
	return invoke[SubmissionResponse](ctx, c.cc, SubmissionsService, "SaveSubmission", in, opts...)
}

// Organizer

type OrganizerServer interface {
	RegisterTeam(context.Context, *RegisterTeamRequest) (*TeamResponse, error)
	SetTeamStatus(context.Context, *SetTeamStatusRequest) (*TeamResponse, error)
	SetClassification(context.Context, *SetClassificationRequest) (*SubmissionResponse, error)
	SetAbstract(context.Context, *SetAbstractRequest) (*SubmissionResponse, error)
}

type UnimplementedOrganizerServer struct{}

func (UnimplementedOrganizerServer) RegisterTeam(context.Context, *RegisterTeamRequest) (*TeamResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterTeam not implemented")
}

func (UnimplementedOrganizerServer) SetTeamStatus(context.Context, *SetTeamStatusRequest) (*TeamResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetTeamStatus not implemented")
}

func (UnimplementedOrganizerServer) SetClassification(context.Context, *SetClassificationRequest) (*SubmissionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetClassification not implemented")
}

func (UnimplementedOrganizerServer) SetAbstract(context.Context, *SetAbstractRequest) (*SubmissionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetAbstract not implemented")
}

var OrganizerServiceDesc = grpc.ServiceDesc{
	ServiceName: OrganizerService,
	HandlerType: (*OrganizerServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(OrganizerService, "RegisterTeam", func(srv interface{}, ctx context.Context, req *RegisterTeamRequest) (*TeamResponse, error) {
			return srv.(OrganizerServer).RegisterTeam(ctx, req)
		}),
		unary(OrganizerService, "SetTeamStatus", func(srv interface{}, ctx context.Context, req *SetTeamStatusRequest) (*TeamResponse, error) {
			return srv.(OrganizerServer).SetTeamStatus(ctx, req)
		}),
		unary(OrganizerService, "SetClassification", func(srv interface{}, ctx context.Context, req *SetClassificationRequest) (*SubmissionResponse, error) {
			return srv.(OrganizerServer).SetClassification(ctx, req)
		}),
		unary(OrganizerService, "SetAbstract", func(srv interface{}, ctx context.Context, req *SetAbstractRequest) (*SubmissionResponse, error) {
			return srv.(OrganizerServer).SetAbstract(ctx, req)
		}),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "portal.proto",
}

func RegisterOrganizerServer(s grpc.ServiceRegistrar, srv OrganizerServer) {
	s.RegisterService(&OrganizerServiceDesc, srv)
}

type OrganizerClient interface {
	RegisterTeam(ctx context.Context, in *RegisterTeamRequest, opts ...grpc.CallOption) (*TeamResponse, error)
	SetTeamStatus(ctx context.Context, in *SetTeamStatusRequest, opts ...grpc.CallOption) (*TeamResponse, error)
	SetClassification(ctx context.Context, in *SetClassificationRequest, opts ...grpc.CallOption) (*SubmissionResponse, error)
	SetAbstract(ctx context.Context, in *SetAbstractRequest, opts ...grpc.CallOption) (*SubmissionResponse, error)
}

type organizerClient struct {
	cc grpc.ClientConnInterface
}

func NewOrganizerClient(cc grpc.ClientConnInterface) OrganizerClient {
	return &organizerClient{cc}
}

func (c *organizerClient) RegisterTeam(ctx context.Context, in *RegisterTeamRequest, opts ...grpc.CallOption) (*TeamResponse, error) {
	return invoke[TeamResponse](ctx, c.cc, OrganizerService, "RegisterTeam", in, opts...)
}

func (c *organizerClient) SetTeamStatus(ctx context.Context, in *SetTeamStatusRequest, opts ...grpc.CallOption) (*TeamResponse, error) {
	return invoke[TeamResponse](ctx, c.cc, OrganizerService, "SetTeamStatus", in, opts...)
}

func (c *organizerClient) SetClassification(ctx context.Context, in *SetClassificationRequest, opts ...grpc.CallOption) (*SubmissionResponse, error) {
	return invoke[SubmissionResponse](ctx, c.cc, OrganizerService, "SetClassification", in, opts...)
}

func (c *organizerClient) SetAbstract(ctx context.Context, in *SetAbstractRequest, opts ...grpc.CallOption) (*SubmissionResponse, error) {
	return invoke[SubmissionResponse](ctx, c.cc, OrganizerService, "SetAbstract", in, opts...)
}
