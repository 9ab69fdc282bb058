// Package registry holds the approver oracle consulted by the ownership ledger: which
// projects may be minted in share mode and by whom, and which addresses act as
// approvers and verifiers.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/adapter"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
)

// ApproverRegistry defines the read-only oracle surface
//
//go:generate mockgen -source=approver.go -destination=../mocks/approver_registry.go -package=mocks -mock_names=ApproverRegistry=MockApproverRegistry
type ApproverRegistry interface {
	// IsApprovedProject returns the approved minter and worth of a project.
	// The minter is the zero address when the project is not approved.
	IsApprovedProject(tokenID common.Hash) domain.ProjectApproval

	// IsApprover checks if addr may burn approved share projects
	IsApprover(addr common.Address) bool

	// IsVerifier checks if addr may mint share projects without approval
	IsVerifier(addr common.Address) bool
}

// ProjectEntry is one approved project in the registry file
type ProjectEntry struct {
	URL    string         `json:"url"`
	Minter common.Address `json:"minter"`
	Worth  *uint256.Int   `json:"worth"`
}

// ApproverData represents the structure of the approver registry JSON file
type ApproverData struct {
	Version   int              `json:"version"`
	Approvers []common.Address `json:"approvers"`
	Verifiers []common.Address `json:"verifiers"`
	Projects  []ProjectEntry   `json:"projects"`
}

// Registry is the file-backed ApproverRegistry. Mutations are written back to the file.
type Registry struct {
	mu        sync.RWMutex
	fs        adapter.FileSystem
	json      adapter.JSON
	filePath  string
	approvers map[common.Address]bool
	verifiers map[common.Address]bool
	projects  map[common.Hash]ProjectEntry
}

// NewRegistry creates an empty registry persisted at filePath. An empty path keeps it in memory.
func NewRegistry(fs adapter.FileSystem, json adapter.JSON, filePath string) *Registry {
	return &Registry{
		fs:        fs,
		json:      json,
		filePath:  filePath,
		approvers: make(map[common.Address]bool),
		verifiers: make(map[common.Address]bool),
		projects:  make(map[common.Hash]ProjectEntry),
	}
}

// Load loads the approver registry from a JSON file
func Load(fs adapter.FileSystem, json adapter.JSON, filePath string) (*Registry, error) {
	data, err := fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read approver registry file: %w", err)
	}

	var registryData ApproverData
	if err := json.Unmarshal(data, &registryData); err != nil {
		return nil, fmt.Errorf("failed to parse approver registry JSON: %w", err)
	}

	r := NewRegistry(fs, json, filePath)
	for _, addr := range registryData.Approvers {
		r.approvers[addr] = true
	}
	for _, addr := range registryData.Verifiers {
		r.verifiers[addr] = true
	}
	for _, p := range registryData.Projects {
		if strings.TrimSpace(p.URL) == "" {
			return nil, fmt.Errorf("approver registry project without url")
		}
		if p.Worth == nil {
			p.Worth = new(uint256.Int)
		}
		r.projects[domain.TokenIDFromURL(p.URL)] = p
	}

	return r, nil
}

func (r *Registry) IsApprovedProject(tokenID common.Hash) domain.ProjectApproval {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.projects[tokenID]
	if !ok {
		return domain.ProjectApproval{Worth: new(uint256.Int)}
	}
	return domain.ProjectApproval{Minter: p.Minter, Worth: new(uint256.Int).Set(p.Worth)}
}

func (r *Registry) IsApprover(addr common.Address) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.approvers[addr]
}

func (r *Registry) IsVerifier(addr common.Address) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.verifiers[addr]
}

// ApproveProject records minter as the only address allowed to mint projectURL in share mode
func (r *Registry) ApproveProject(projectURL string, minter common.Address, worth *uint256.Int) error {
	if strings.TrimSpace(projectURL) == "" {
		return domain.ErrEmptyProjectURL
	}
	if domain.IsZeroAddress(minter) {
		return domain.ErrZeroAddress
	}
	if worth == nil {
		worth = new(uint256.Int)
	}
	return r.update(func() {
		r.projects[domain.TokenIDFromURL(projectURL)] = ProjectEntry{
			URL:    domain.CanonicalProjectURL(projectURL),
			Minter: minter,
			Worth:  new(uint256.Int).Set(worth),
		}
	})
}

// RevokeProject removes the approval of projectURL
func (r *Registry) RevokeProject(projectURL string) error {
	return r.update(func() {
		delete(r.projects, domain.TokenIDFromURL(projectURL))
	})
}

// SetApprover grants or revokes the approver role
func (r *Registry) SetApprover(addr common.Address, granted bool) error {
	return r.update(func() {
		setRole(r.approvers, addr, granted)
	})
}

// SetVerifier grants or revokes the verifier role
func (r *Registry) SetVerifier(addr common.Address, granted bool) error {
	return r.update(func() {
		setRole(r.verifiers, addr, granted)
	})
}

// Data returns the registry content in file form, sorted for stable output
func (r *Registry) Data() ApproverData {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.data()
}

func (r *Registry) data() ApproverData {
	data := ApproverData{
		Version:   1,
		Approvers: sortedAddresses(r.approvers),
		Verifiers: sortedAddresses(r.verifiers),
		Projects:  make([]ProjectEntry, 0, len(r.projects)),
	}
	for _, p := range r.projects {
		data.Projects = append(data.Projects, p)
	}
	sort.Slice(data.Projects, func(i, j int) bool {
		return data.Projects[i].URL < data.Projects[j].URL
	})
	return data
}

// update applies fn and persists the result. The in-memory change is kept only if
// the file could be written.
func (r *Registry) update(fn func()) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	backup := r.clone()
	fn()

	if r.filePath == "" {
		return nil
	}
	raw, err := r.json.Marshal(r.data())
	if err != nil {
		r.restore(backup)
		return fmt.Errorf("failed to marshal approver registry: %w", err)
	}
	if err := r.fs.WriteFile(r.filePath, raw); err != nil {
		r.restore(backup)
		return fmt.Errorf("failed to write approver registry file: %w", err)
	}
	return nil
}

type registryState struct {
	approvers map[common.Address]bool
	verifiers map[common.Address]bool
	projects  map[common.Hash]ProjectEntry
}

func (r *Registry) clone() registryState {
	s := registryState{
		approvers: make(map[common.Address]bool, len(r.approvers)),
		verifiers: make(map[common.Address]bool, len(r.verifiers)),
		projects:  make(map[common.Hash]ProjectEntry, len(r.projects)),
	}
	for k, v := range r.approvers {
		s.approvers[k] = v
	}
	for k, v := range r.verifiers {
		s.verifiers[k] = v
	}
	for k, v := range r.projects {
		s.projects[k] = v
	}
	return s
}

func (r *Registry) restore(s registryState) {
	r.approvers = s.approvers
	r.verifiers = s.verifiers
	r.projects = s.projects
}

func setRole(roles map[common.Address]bool, addr common.Address, granted bool) {
	if granted {
		roles[addr] = true
		return
	}
	delete(roles, addr)
}

func sortedAddresses(set map[common.Address]bool) []common.Address {
	out := make([]common.Address, 0, len(set))
	for addr := range set {
		out = append(out, addr)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Cmp(out[j]) < 0
	})
	return out
}
