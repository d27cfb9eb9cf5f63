package templates

// NewBuiltinRegistry constructs a registry populated with the six built-in
// templates. Registration order determines listing and menu order.
func NewBuiltinRegistry() (*Registry, error) {
	r := NewRegistry()
	for _, d := range []Descriptor{
		NFTMint(),
		Staking(),
		Escrow(),
		Governance(),
		Marketplace(),
		Vault(),
	} {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}
