// Package service orchestrates the core components of the stack
// engine: the lock-free stack, epoch reclamation, entry WAL, exit
// WAL, and event producers.
//
// It provides a clean API for pushing, popping, and inspecting the
// stack, decoupled from network transports like gRPC.
package service
