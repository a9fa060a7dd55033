// Package board holds the filter state of one stream-list view.
//
// A board is created per view with every facet set to "all". Its facet choices are built
// from the first ready snapshot and kept for the lifetime of the view, so a later refresh
// of the list does not change the choices offered to the user. A Board is driven by a
// single flow and is not safe for concurrent use.
package board

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/streamsift/streamsift/log"
	"github.com/streamsift/streamsift/stream"
)

// Host signals when its stream list is ready to be read.
type Host interface {
	OnReady(func(stream.Snapshot))
}

// Board tracks records, facet choices and the current selection of a view.
type Board struct {
	snapshot  stream.Snapshot
	records   []stream.Record
	facets    stream.Facets
	selection stream.Selection
	ready     bool

	visibility stream.Visibility
	listeners  []func(*Board)
}

// New returns an empty board that selects everything.
func New() *Board {
	return &Board{selection: stream.NewSelection()}
}

// Attach registers the board with host so every ready snapshot is loaded.
func (b *Board) Attach(host Host) {
	host.OnReady(b.Ready)
}

// OnChange registers fn to run after every load or selection change.
func (b *Board) OnChange(fn func(*Board)) {
	b.listeners = append(b.listeners, fn)
}

// Ready loads a snapshot. The first call also builds the facet choices.
func (b *Board) Ready(snapshot stream.Snapshot) {
	b.snapshot = snapshot
	b.records = snapshot.Records()

	if !b.ready {
		b.facets = stream.CollectFacets(b.records)
		b.ready = true
		log.With(logrus.Fields{
			"streams":   len(b.records),
			"qualities": len(b.facets.Qualities),
			"languages": len(b.facets.Languages),
			"origins":   len(b.facets.Origins),
		}).Info("stream list ready")
	} else {
		log.Debugf("stream list refreshed with %d streams", len(b.records))
	}

	b.apply()
}

// IsReady reports whether a snapshot has been loaded.
func (b *Board) IsReady() bool {
	return b.ready
}

// Select sets the value of facet and re-evaluates visibility.
func (b *Board) Select(facet stream.Facet, value string) error {
	switch facet {
	case stream.FacetQuality, stream.FacetLanguage, stream.FacetOrigin:
	default:
		return fmt.Errorf("unknown facet: %s", facet)
	}

	b.selection = b.selection.With(facet, value)
	log.Debugf("selected %s=%s", facet, b.selection.Get(facet))
	b.apply()
	return nil
}

// SelectAll replaces the whole selection and re-evaluates visibility.
func (b *Board) SelectAll(sel stream.Selection) {
	for _, f := range stream.AllFacets() {
		sel = sel.With(f, sel.Get(f))
	}
	b.selection = sel
	b.apply()
}

func (b *Board) apply() {
	b.visibility = stream.Apply(b.records, b.selection)
	for _, fn := range b.listeners {
		fn(b)
	}
}

func (b *Board) Year() string                  { return b.snapshot.Year }
func (b *Board) Records() []stream.Record      { return b.records }
func (b *Board) Facets() stream.Facets         { return b.facets }
func (b *Board) Selection() stream.Selection   { return b.selection }
func (b *Board) Visibility() stream.Visibility { return b.visibility }
