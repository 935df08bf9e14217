package nvim

//go:generate mockgen -source=api.go -destination=mocks/mock_api.go -package=mocks

// API is the part of *nvim.Nvim the engine client calls.
type API interface {
	SetOption(name string, value any) error
	WritelnErr(str string) error
}
