// Package monitor provides observers for a running DCPU-16.
//
// Observers attach to a cpu.Cpu through its instrumentation events, and
// never change the results of the program they observe.
package monitor
