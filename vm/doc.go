// Package vm executes a resolved brainfuck program against a byte tape
// grown on demand, reading and writing raw bytes as the program directs.
package vm
