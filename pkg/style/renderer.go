package style

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/yuttie/paperman/pkg/types"
)

// Renderer writes operation results as terminal output. With styling
// enabled it colors indicators and badges through the theme and pterm;
// without it the output has the same structure in plain text, which
// keeps piped and redirected output stable.
type Renderer struct {
	out    io.Writer
	styled bool
}

// NewRenderer creates a renderer writing to out
func NewRenderer(out io.Writer, styled bool) *Renderer {
	return &Renderer{out: out, styled: styled}
}

// RenderAdd renders the outcome of an add operation
func (r *Renderer) RenderAdd(result *types.AddResult) error {
	var b strings.Builder

	for _, f := range result.Added {
		fmt.Fprintf(&b, "%s Moved '%s' to '%s'\n", r.check(), f.OriginalPath, f.RepoPath)
		fmt.Fprintf(&b, "%s Created symlink: '%s' -> '%s'\n", r.check(), f.OriginalPath, f.LinkTarget)
	}

	if len(result.Added) == 0 {
		b.WriteString("No files were added.\n")
	} else {
		summary := fmt.Sprintf("✨ Success! %d file(s) are now managed by paperman.", len(result.Added))
		b.WriteString("\n" + r.style("Success", summary) + "\n")
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

// RenderSkipped renders the skipped-items diagnostic. It is written
// separately from the add result so it can go to the error stream.
func (r *Renderer) RenderSkipped(skipped []types.SkippedFile) error {
	if len(skipped) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString(r.style("Warning", fmt.Sprintf("Skipped %d item(s):", len(skipped))) + "\n")
	for _, s := range skipped {
		fmt.Fprintf(&b, "  - '%s': %s\n", s.Path, s.Reason)
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

// RenderList renders the repository contents
func (r *Renderer) RenderList(result *types.ListResult) error {
	var b strings.Builder

	if len(result.Entries) == 0 {
		fmt.Fprintf(&b, "Repository '%s' is empty.\n", result.RepoDir)
	} else {
		b.WriteString(r.style("Header", fmt.Sprintf("Repository '%s':", result.RepoDir)) + "\n")
		for _, e := range result.Entries {
			fmt.Fprintf(&b, "  %-24s %s\n", e.Name, r.classBadge(e.Class))
		}
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

// RenderStatus renders per-path link states
func (r *Renderer) RenderStatus(result *types.StatusResult) error {
	var b strings.Builder

	for _, p := range result.Paths {
		line := fmt.Sprintf("  %s : %s", r.stateBadge(p.State), p.Path)
		if p.Target != "" {
			line += " -> " + r.style("LinkTarget", p.Target)
		}
		b.WriteString(line + "\n")
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

// RenderConfig renders the resolved configuration
func (r *Renderer) RenderConfig(file, rawRepoDir, repoDir string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", r.style("Bold", "Config file:"), file)
	fmt.Fprintf(&b, "%s    %s\n", r.style("Bold", "repo_dir:"), rawRepoDir)
	fmt.Fprintf(&b, "%s    %s\n", r.style("Bold", "Resolved:"), repoDir)

	_, err := io.WriteString(r.out, b.String())
	return err
}

// RenderError renders an error message
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.out, r.style("Error", fmt.Sprintf("Error: %v", err)))
	return werr
}

// RenderJSON renders any result as indented JSON for machine consumption
func (r *Renderer) RenderJSON(v interface{}) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// check returns the success indicator, styled when enabled
func (r *Renderer) check() string {
	if r.styled {
		return GetStyle("Success").Render("✔")
	}
	return "✔"
}

// style renders s with the named theme style when styling is enabled
func (r *Renderer) style(name, s string) string {
	if r.styled {
		return GetStyle(name).Render(s)
	}
	return s
}

// stateBadge formats a link state as a fixed-width badge
func (r *Renderer) stateBadge(state types.LinkState) string {
	badge := fmt.Sprintf("%-12s", state)
	if r.styled {
		return StateStyle(state).Sprint(badge)
	}
	return badge
}

// classBadge formats a file classification, styled when enabled
func (r *Renderer) classBadge(class types.FileClassification) string {
	if r.styled {
		return ClassStyle(class).Sprint(string(class))
	}
	return string(class)
}
