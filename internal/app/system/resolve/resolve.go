// Package resolve implements the merge policy that combines a possibly
// partial remote content document with the compiled-in default, producing a
// complete render-safe document.
//
// The policy is field-kind based:
//
//   - Record fields (personal, footer) use the remote record when it carries
//     content, else the whole default record.
//   - Heading override strings use the remote value when non-empty.
//   - List fields use the remote list only when it has at least one element;
//     an empty remote list means "not set" and the default list is used whole.
//     Lists are never merged element-by-element.
//
// The non-empty-remote-wins rule makes "delete every item in a list" an
// unreachable state through the normal edit/save/reload cycle: a saved empty
// list resolves back to the defaults. That behavior is intentional here and
// preserved as-is.
package resolve

import (
	"github.com/motadesign/folio/internal/domain/models"
)

// Merge resolves remote against def per the package policy and returns the
// complete document. Neither input is modified.
func Merge(remote, def models.ContentDocument) models.ContentDocument {
	out := def

	if !remote.Personal.IsZero() {
		out.Personal = remote.Personal
	}
	if !remote.Footer.IsZero() {
		out.Footer = remote.Footer
	}

	if remote.ExpertiseTitle != "" {
		out.ExpertiseTitle = remote.ExpertiseTitle
	}
	if remote.ExpertiseSubtitle != "" {
		out.ExpertiseSubtitle = remote.ExpertiseSubtitle
	}
	if remote.ExperienceTitle != "" {
		out.ExperienceTitle = remote.ExperienceTitle
	}
	if remote.ExperienceSubtitle != "" {
		out.ExperienceSubtitle = remote.ExperienceSubtitle
	}

	if len(remote.Stats) > 0 {
		out.Stats = remote.Stats
	}
	if len(remote.Skills) > 0 {
		out.Skills = remote.Skills
	}
	if len(remote.ExpertiseAreas) > 0 {
		out.ExpertiseAreas = remote.ExpertiseAreas
	}
	if len(remote.Experiences) > 0 {
		out.Experiences = remote.Experiences
	}
	if len(remote.Projects) > 0 {
		out.Projects = remote.Projects
	}
	if len(remote.Social) > 0 {
		out.Social = remote.Social
	}

	out.ID = remote.ID
	out.UpdatedAt = remote.UpdatedAt
	return out
}

// WithDefaults resolves remote against the compiled-in default content.
func WithDefaults(remote models.ContentDocument) models.ContentDocument {
	return Merge(remote, models.DefaultContent())
}
