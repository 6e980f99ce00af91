package match

import (
	"context"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oggyb/matching-service/internal/db"
	svcErr "github.com/oggyb/matching-service/internal/errors"
	"github.com/oggyb/matching-service/internal/matchstate"
	pb "github.com/oggyb/matching-service/internal/proto/matchpb"
)

// RPC adapts Service to the MatchService gRPC contract.
type RPC struct {
	svc *Service
}

var _ pb.MatchServiceServer = (*RPC)(nil)

func NewRPC(svc *Service) *RPC { return &RPC{svc: svc} }

// RequestMatch expects {partner_id_1, partner_id_2, match_status?}.
func (r *RPC) RequestMatch(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	a, b := pairOf(req)

	var status *matchstate.Status
	if v, ok := req.GetFields()["match_status"]; ok {
		s, err := statusOf(v)
		if err != nil {
			return nil, svcErr.Map(err)
		}
		status = &s
	}

	m, err := r.svc.Request(ctx, a, b, status)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return toStruct(m)
}

func (r *RPC) AcceptMatch(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	a, b := pairOf(req)
	m, err := r.svc.Accept(ctx, a, b)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return toStruct(m)
}

func (r *RPC) DeclineMatch(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	a, b := pairOf(req)
	m, err := r.svc.Decline(ctx, a, b)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return toStruct(m)
}

func (r *RPC) GetMatch(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	a, b := pairOf(req)
	m, err := r.svc.Get(ctx, a, b)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return toStruct(m)
}

func pairOf(req *structpb.Struct) (string, string) {
	f := req.GetFields()
	return f["partner_id_1"].GetStringValue(), f["partner_id_2"].GetStringValue()
}

func statusOf(v *structpb.Value) (matchstate.Status, error) {
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return matchstate.Parse(k.StringValue)
	case *structpb.Value_NumberValue:
		s := matchstate.Status(int(k.NumberValue))
		if float64(s) != k.NumberValue || !s.Valid() {
			return 0, svcErr.Invalid("unknown match status %v", k.NumberValue)
		}
		return s, nil
	}
	return 0, svcErr.Invalid("match_status must be a name or integer")
}

func toStruct(m *db.Match) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(map[string]any{
		"partner_id_1": m.PartnerID1,
		"partner_id_2": m.PartnerID2,
		"match_status": m.Status.String(),
		"created_at":   m.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return out, nil
}
