package types

// ItemStatus is the outcome of processing one link.
type ItemStatus string

const (
	StatusCreated  ItemStatus = "created"
	StatusSkipped  ItemStatus = "skipped"
	StatusError    ItemStatus = "error"
	StatusNotFound ItemStatus = "not_found"
	StatusDryRun   ItemStatus = "dry_run"
	StatusRemoved  ItemStatus = "removed"
)

// Skip and removal reasons.
const (
	ReasonAlreadyExists = "already exists"
	ReasonNotSymlink    = "not a symlink"
	ReasonIsDirectory   = "is directory"
	ReasonBroken        = "broken symlink"
)

// ItemResult records what happened to one link.
type ItemResult struct {
	Status      ItemStatus `json:"status"`
	DisplayName string     `json:"displayName"`
	Path        string     `json:"path,omitempty"`
	Reason      string     `json:"reason,omitempty"`
}

// OperationResult is the aggregated outcome of a creation batch.
// It is built fresh per call and not mutated after being returned.
type OperationResult struct {
	Total   int          `json:"total"`
	Created int          `json:"created"`
	Skipped int          `json:"skipped"`
	Errors  int          `json:"errors"`
	DryRun  int          `json:"dryRun"`
	Items   []ItemResult `json:"items"`
}

// Add records an item and updates the matching counter.
func (r *OperationResult) Add(item ItemResult) {
	r.Items = append(r.Items, item)
	switch item.Status {
	case StatusCreated:
		r.Created++
	case StatusSkipped:
		r.Skipped++
	case StatusError:
		r.Errors++
	case StatusDryRun:
		r.DryRun++
	}
}

// RemovalResult is the aggregated outcome of a removal pass.
type RemovalResult struct {
	Removed  int          `json:"removed"`
	Skipped  int          `json:"skipped"`
	NotFound int          `json:"notFound"`
	Errors   int          `json:"errors"`
	DryRun   int          `json:"dryRun"`
	Items    []ItemResult `json:"items"`
}

// Add records an item and updates the matching counter.
func (r *RemovalResult) Add(item ItemResult) {
	r.Items = append(r.Items, item)
	switch item.Status {
	case StatusRemoved:
		r.Removed++
	case StatusSkipped:
		r.Skipped++
	case StatusNotFound:
		r.NotFound++
	case StatusError:
		r.Errors++
	case StatusDryRun:
		r.DryRun++
	}
}

// Merge folds another removal result into r, keeping item order.
func (r *RemovalResult) Merge(other *RemovalResult) {
	if other == nil {
		return
	}
	r.Removed += other.Removed
	r.Skipped += other.Skipped
	r.NotFound += other.NotFound
	r.Errors += other.Errors
	r.DryRun += other.DryRun
	r.Items = append(r.Items, other.Items...)
}
