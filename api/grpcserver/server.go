package grpcserver

import (
	"context"
	"log"

	pb "stackd/api/pb"
	"stackd/service"
)

// Server adapts StackService to gRPC.
type Server struct {
	pb.UnimplementedStackServer
	svc *service.StackService
}

func NewServer(svc *service.StackService) *Server {
	return &Server{svc: svc}
}

// -------------------- Commands --------------------

func (s *Server) Push(
	ctx context.Context,
	req *pb.PushRequest,
) (*pb.PushResponse, error) {
	seq, err := s.svc.Push(req.Value)
	if err != nil {
		log.Printf("[gRPC] Push failed: %v", err)
		return nil, err
	}

	log.Printf("[gRPC] Push len=%d seq=%d", len(req.Value), seq)

	return &pb.PushResponse{
		Seq:  seq,
		Size: s.svc.Stats().Size,
	}, nil
}

func (s *Server) Pop(
	ctx context.Context,
	req *pb.PopRequest,
) (*pb.PopResponse, error) {
	seq, value, ok, err := s.svc.Pop()
	if err != nil {
		log.Printf("[gRPC] Pop failed: %v", err)
		return nil, err
	}
	if !ok {
		return &pb.PopResponse{Found: false}, nil
	}

	log.Printf("[gRPC] Pop len=%d seq=%d", len(value), seq)

	return &pb.PopResponse{
		Found: true,
		Value: value,
		Seq:   seq,
	}, nil
}

// -------------------- Queries --------------------

func (s *Server) Peek(
	ctx context.Context,
	req *pb.PeekRequest,
) (*pb.PeekResponse, error) {
	value, ok := s.svc.Peek()
	if !ok {
		return &pb.PeekResponse{Found: false}, nil
	}
	return &pb.PeekResponse{
		Found: true,
		Value: value,
	}, nil
}

func (s *Server) Stats(
	ctx context.Context,
	req *pb.StatsRequest,
) (*pb.StatsResponse, error) {
	st := s.svc.Stats()
	return &pb.StatsResponse{
		Size:  st.Size,
		Empty: st.Empty,
		Epoch: st.Epoch,
	}, nil
}
