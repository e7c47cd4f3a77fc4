package mocks

import "github.com/user/lapsestamp/pkg/ports"

// Progress is a mock implementation of ports.Progress that counts signals.
type Progress struct {
	Total    int
	Advances int
	Started  bool
	Finished bool
}

func (m *Progress) Start(total int) {
	m.Started = true
	m.Total = total
}

func (m *Progress) Advance() {
	m.Advances++
}

func (m *Progress) Finish() {
	m.Finished = true
}

var _ ports.Progress = (*Progress)(nil)
