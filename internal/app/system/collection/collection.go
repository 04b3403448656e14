// Package collection implements the generic editing operations applied to the
// list fields of the content document: append, remove-at-index,
// update-at-index, and reorder, plus the one-level-deeper variants for
// expertise area items.
//
// Every operation is pure: the input document is never mutated and a new
// document value is returned. The targeted slice is copied before any change
// so callers holding the previous value keep seeing the previous content.
// Out-of-range indexes are silent no-ops, never panics; defensive handling is
// the contract here so a stray index from a stale form can't corrupt a list.
package collection

import (
	"sort"

	"github.com/motadesign/folio/internal/domain/models"
)

// Field selects one list-valued field of a content document. The Get accessor
// must return a pointer into the passed document so operations can replace
// the slice on a copied document value.
type Field[T any] struct {
	Name string
	Get  func(*models.ContentDocument) *[]T
}

// The editable list fields of the content document.
var (
	Stats = Field[models.Stat]{
		Name: "stats",
		Get:  func(d *models.ContentDocument) *[]models.Stat { return &d.Stats },
	}
	Skills = Field[models.Skill]{
		Name: "skills",
		Get:  func(d *models.ContentDocument) *[]models.Skill { return &d.Skills },
	}
	ExpertiseAreas = Field[models.ExpertiseArea]{
		Name: "expertise_areas",
		Get:  func(d *models.ContentDocument) *[]models.ExpertiseArea { return &d.ExpertiseAreas },
	}
	Experiences = Field[models.Experience]{
		Name: "experiences",
		Get:  func(d *models.ContentDocument) *[]models.Experience { return &d.Experiences },
	}
	Projects = Field[models.Project]{
		Name: "projects",
		Get:  func(d *models.ContentDocument) *[]models.Project { return &d.Projects },
	}
	Social = Field[models.SocialLink]{
		Name: "social",
		Get:  func(d *models.ContentDocument) *[]models.SocialLink { return &d.Social },
	}
)

// NextID returns max(existing ids)+1, or 1 for an empty list.
func NextID[T any](list []T, id func(T) int) int {
	max := 0
	for _, item := range list {
		if id(item) > max {
			max = id(item)
		}
	}
	return max + 1
}

// Append returns a new document whose field list has item appended.
func Append[T any](doc models.ContentDocument, f Field[T], item T) models.ContentDocument {
	list := *f.Get(&doc)
	next := make([]T, len(list), len(list)+1)
	copy(next, list)
	next = append(next, item)
	*f.Get(&doc) = next
	return doc
}

// RemoveAt returns a new document whose field list has the element at index
// removed. An index outside [0, len) leaves the document unchanged.
func RemoveAt[T any](doc models.ContentDocument, f Field[T], index int) models.ContentDocument {
	list := *f.Get(&doc)
	if index < 0 || index >= len(list) {
		return doc
	}
	next := make([]T, 0, len(list)-1)
	next = append(next, list[:index]...)
	next = append(next, list[index+1:]...)
	*f.Get(&doc) = next
	return doc
}

// UpdateAt returns a new document with the element at index replaced by
// update(element). All other elements are carried over untouched. An index
// outside [0, len) leaves the document unchanged.
func UpdateAt[T any](doc models.ContentDocument, f Field[T], index int, update func(T) T) models.ContentDocument {
	list := *f.Get(&doc)
	if index < 0 || index >= len(list) {
		return doc
	}
	next := make([]T, len(list))
	copy(next, list)
	next[index] = update(next[index])
	*f.Get(&doc) = next
	return doc
}

// ReorderProjects moves the project at from to position to and rewrites every
// project's Order to its new position, keeping display order dense and
// deterministic. Out-of-range indexes leave the document unchanged.
func ReorderProjects(doc models.ContentDocument, from, to int) models.ContentDocument {
	list := doc.Projects
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) || from == to {
		return doc
	}
	next := make([]models.Project, len(list))
	copy(next, list)
	moved := next[from]
	if from < to {
		copy(next[from:], next[from+1:to+1])
	} else {
		copy(next[to+1:], next[to:from])
	}
	next[to] = moved
	for i := range next {
		next[i].Order = i
	}
	doc.Projects = next
	return doc
}

// NormalizeProjects rewrites the projects slice into display order: stable
// sort by Order with storage position breaking ties, then Order set to its
// dense position index. After normalization storage order and display order
// agree, so positional reorder forms move exactly one step.
func NormalizeProjects(doc models.ContentDocument) models.ContentDocument {
	list := doc.Projects
	next := make([]models.Project, len(list))
	copy(next, list)
	sort.SliceStable(next, func(i, j int) bool {
		return next[i].Order < next[j].Order
	})
	for i := range next {
		next[i].Order = i
	}
	doc.Projects = next
	return doc
}

// AppendProjectImage appends a hosted image URL to the gallery of the project
// at projectIndex.
func AppendProjectImage(doc models.ContentDocument, projectIndex int, url string) models.ContentDocument {
	return UpdateAt(doc, Projects, projectIndex, func(p models.Project) models.Project {
		images := make([]string, len(p.Images), len(p.Images)+1)
		copy(images, p.Images)
		p.Images = append(images, url)
		return p
	})
}

// RemoveProjectImage removes the gallery image at imageIndex from the project
// at projectIndex. Either index out of range is a no-op.
func RemoveProjectImage(doc models.ContentDocument, projectIndex, imageIndex int) models.ContentDocument {
	return UpdateAt(doc, Projects, projectIndex, func(p models.Project) models.Project {
		if imageIndex < 0 || imageIndex >= len(p.Images) {
			return p
		}
		images := make([]string, 0, len(p.Images)-1)
		images = append(images, p.Images[:imageIndex]...)
		images = append(images, p.Images[imageIndex+1:]...)
		p.Images = images
		return p
	})
}

// AppendExpertiseItem appends an item string to the area at areaIndex.
func AppendExpertiseItem(doc models.ContentDocument, areaIndex int, item string) models.ContentDocument {
	return UpdateAt(doc, ExpertiseAreas, areaIndex, func(area models.ExpertiseArea) models.ExpertiseArea {
		items := make([]string, len(area.Items), len(area.Items)+1)
		copy(items, area.Items)
		area.Items = append(items, item)
		return area
	})
}

// RemoveExpertiseItem removes the item at itemIndex from the area at
// areaIndex. Either index out of range is a no-op.
func RemoveExpertiseItem(doc models.ContentDocument, areaIndex, itemIndex int) models.ContentDocument {
	return UpdateAt(doc, ExpertiseAreas, areaIndex, func(area models.ExpertiseArea) models.ExpertiseArea {
		if itemIndex < 0 || itemIndex >= len(area.Items) {
			return area
		}
		items := make([]string, 0, len(area.Items)-1)
		items = append(items, area.Items[:itemIndex]...)
		items = append(items, area.Items[itemIndex+1:]...)
		area.Items = items
		return area
	})
}

// UpdateExpertiseItem replaces the item at itemIndex within the area at
// areaIndex. Either index out of range is a no-op.
func UpdateExpertiseItem(doc models.ContentDocument, areaIndex, itemIndex int, value string) models.ContentDocument {
	return UpdateAt(doc, ExpertiseAreas, areaIndex, func(area models.ExpertiseArea) models.ExpertiseArea {
		if itemIndex < 0 || itemIndex >= len(area.Items) {
			return area
		}
		items := make([]string, len(area.Items))
		copy(items, area.Items)
		items[itemIndex] = value
		area.Items = items
		return area
	})
}
