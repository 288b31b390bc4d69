// Package candefs provides the CAN primitives shared by Project Phoenix
// nodes: the Frame type, declarative Signal/Descriptor tables with bit-level
// pack/unpack and physical-unit scaling, a Bus abstraction with in-memory
// loopback and Linux SocketCAN implementations, and frame multiplexing
// helpers.
//
// The typed Phoenix message catalog built on these primitives lives in the
// phnx subpackage.
package candefs
