package mocks

import "github.com/user/lapsestamp/pkg/ports"

// MetadataSource is a mock implementation of ports.MetadataSource.
type MetadataSource struct {
	Info       ports.ClipInfo
	Err        error
	ProbeCalls []string
}

func (m *MetadataSource) Probe(path string) (ports.ClipInfo, error) {
	m.ProbeCalls = append(m.ProbeCalls, path)
	if m.Err != nil {
		return ports.ClipInfo{}, m.Err
	}
	info := m.Info
	info.Path = path
	return info, nil
}

var _ ports.MetadataSource = (*MetadataSource)(nil)
