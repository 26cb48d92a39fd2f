package model

import "math/rand"

type SimContext interface {
	Now() VirtualTime
	// SetTimer arranges for callback to run once the simulation reaches expireAt. The name is for diagnostics.
	SetTimer(expireAt VirtualTime, name string, callback func()) (cancel func())
	// Later runs callback at the current time, once the callback currently executing has returned.
	Later(name string, callback func()) (cancel func())
	Rand() *rand.Rand
}
