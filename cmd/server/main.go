package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"path/filepath"
	"time"

	"google.golang.org/grpc"

	"stackd/api/grpcserver"
	pb "stackd/api/pb"

	"stackd/domain/stack"
	"stackd/infra/kafka"
	"stackd/infra/memory"
	"stackd/infra/sequence"
	entrywal "stackd/infra/wal/entry"
	exitwal "stackd/infra/wal/exit"
	"stackd/jobs/broadcaster"
	"stackd/service"
	"stackd/snapshot"
)

func main() {
	// ---------------- Entry WAL ----------------

	entryWAL, err := entrywal.Open(entrywal.Config{
		Dir:             "./wal_entry",
		SegmentSize:     2 * 1024 * 1024,
		SegmentDuration: time.Minute,
	})
	if err != nil {
		log.Fatalf("entry WAL init failed: %v", err)
	}
	defer entryWAL.Close()

	// ---------------- Exit WAL ----------------

	exitWAL, err := exitwal.Open("./wal_exit")
	if err != nil {
		log.Fatalf("exit WAL init failed: %v", err)
	}
	defer exitWAL.Close()

	// ---------------- Sequencer ----------------

	seqGen := sequence.New(0)

	// ---------------- Memory ----------------

	mem := memory.NewDomain()

	// ---------------- Domain ----------------

	st := stack.New[[]byte](mem)

	// ---------------- Snapshot + WAL replay ----------------

	snapSeq, err := snapshot.Load(filepath.Join("./snapshots", "snapshot.bin"), st)
	if err != nil {
		log.Fatalf("snapshot load failed: %v", err)
	}
	if snapSeq > 0 {
		log.Printf("[main] snapshot restored (seq = %d)", snapSeq)
	}

	if err := service.ReplayFromWAL("./wal_entry", st, seqGen, snapSeq); err != nil {
		log.Fatalf("WAL replay failed: %v", err)
	}

	// ---------------- Events ----------------

	events := kafka.NewProducer([]string{"localhost:9092"}, "stack.pushes")
	defer events.Close()

	// ---------------- Service ----------------

	svc := service.NewStackService(
		st,
		mem,
		seqGen,
		entryWAL,
		exitWAL,
		events,
	)

	// ---------------- Background Jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			svc.AdvanceEpoch()
		}
	}()

	svc.StartSnapshotJob("./snapshots", time.Minute)

	bc, err := broadcaster.New(
		exitWAL,
		[]string{"localhost:9092"},
		"stack.pops",
		2*time.Second,
	)
	if err != nil {
		log.Printf("[main] broadcaster disabled: %v", err)
	} else {
		bc.Start(ctx)
		defer bc.Close()
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", ":50051")
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterStackServer(
		grpcSrv,
		grpcserver.NewServer(svc),
	)

	fmt.Println("🚀 stackd running on :50051")

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}
