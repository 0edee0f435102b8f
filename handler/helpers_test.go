package handler_test

import (
	"context"
	"net"
	"sync/atomic"
	"time"

	. "github.com/onsi/gomega"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
	"hackportal-backend/cache"
	"hackportal-backend/handler"
	"hackportal-backend/jwt"
	"hackportal-backend/portal"
	pb "hackportal-backend/proto"
	"hackportal-backend/store"
	"hackportal-backend/submission"
)

var (
	teamKey      = []byte("team-key")
	organizerKey = []byte("organizer-key")
)

type switchGate struct {
	open atomic.Bool
}

func (g *switchGate) IsOpen() bool { return g.open.Load() }

type backend struct {
	gate   *switchGate
	server *grpc.Server
	conn   *grpc.ClientConn

	auth        pb.AuthClient
	submissions pb.SubmissionsClient
	organizer   pb.OrganizerClient
}

func startBackend(winners []string) *backend {
	b := &backend{gate: &switchGate{}}
	b.gate.open.Store(true)

	s := store.NewMemory()
	subs := submission.NewService(s.Submissions, b.gate, nil)
	tokens := jwt.NewJWT(teamKey, organizerKey, time.Hour)
	svc := portal.NewService(s, subs, tokens, cache.NewMemory(time.Minute), winners)

	lis := bufconn.Listen(1 << 20)
	b.server = handler.NewServer(svc)
	go func() {
		_ = b.server.Serve(lis)
	}()

	conn, err := grpc.Dial("bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		pb.ClientCodec(),
	)
	Expect(err).To(BeNil())

	b.conn = conn
	b.auth = pb.NewAuthClient(conn)
	b.submissions = pb.NewSubmissionsClient(conn)
	b.organizer = pb.NewOrganizerClient(conn)
	return b
}

func (b *backend) stop() {
	_ = b.conn.Close()
	b.server.Stop()
}

func withToken(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func organizerContext() context.Context {
	token, err := jwt.NewOrganizerToken(time.Now().Add(time.Hour), organizerKey)
	Expect(err).To(BeNil())
	return withToken(token)
}

func newTeam(name string) *pb.Team {
	return &pb.Team{
		TeamName:        name,
		TeamSize:        1,
		IdeaTitle:       name + " idea",
		IdeaDocumentUrl: "https://docs.example.com/" + name,
		Participants: []*pb.Participant{{
			Name:          name + " lead",
			Email:         "lead@example.com",
			Age:           21,
			Phone:         "1234567890",
			Role:          "student",
			Affiliation:   "IIIT",
			GithubProfile: "https://github.com/lead",
		}},
	}
}

// Team is a registered team with a logged in session.
type Team struct {
	ID    string
	Token string
}

func (t *Team) Context() context.Context {
	return withToken(t.Token)
}

func (b *backend) registerTeam(name string) *Team {
	res, err := b.organizer.RegisterTeam(organizerContext(), &pb.RegisterTeamRequest{
		Team:     newTeam(name),
		Username: name,
		Password: name + "-secret",
	})
	Expect(err).To(BeNil())

	login, err := b.auth.Login(context.Background(), &pb.LoginRequest{Username: name, Password: name + "-secret"})
	Expect(err).To(BeNil())
	Expect(login.TeamId).To(Equal(res.Team.Id))

	return &Team{ID: login.TeamId, Token: login.Token}
}

func publicNames(teams []*pb.PublicTeam) []string {
	res := make([]string, 0, len(teams))
	for _, t := range teams {
		res = append(res, t.TeamName)
	}
	return res
}
