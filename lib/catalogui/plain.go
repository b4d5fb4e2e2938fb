// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalogui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bureau-foundation/pokedex/lib/catalog"
	"github.com/bureau-foundation/pokedex/lib/query"
	"github.com/bureau-foundation/pokedex/lib/store"
	"github.com/bureau-foundation/pokedex/lib/viewstate"
)

// Exit codes of Print.
const (
	ExitFetchFailed = 1
	ExitNotFound    = 2
)

// ExitError reports the exit code for a Print whose outcome has
// already been written. main uses ExitCode to exit without printing
// anything further.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the process exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// Print resolves config.Route once, through the same list and detail
// state machines the browser uses, and writes the result to writer as
// plain text. Not-found routes and items return an ExitError with
// ExitNotFound; failed fetches return ExitFetchFailed.
func Print(ctx context.Context, writer io.Writer, config Config) error {
	shared := config.Store
	if shared == nil {
		shared = store.New()
	}
	if config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.Timeout)
		defer cancel()
	}

	route := ParseRoute(config.Route)
	switch route.Kind {
	case RouteList:
		return printList(ctx, writer, config.Source, viewstate.NewList(shared, config.PerPage), config.Page)
	case RouteDetail:
		return printDetail(ctx, writer, config.Source, viewstate.NewDetail(shared, route.Key))
	case RouteAbout:
		_, err := io.WriteString(writer, aboutMarkdown)
		return err
	}
	fmt.Fprintf(writer, "404 - Page Not Found: %s\n", route.Path)
	return &ExitError{Code: ExitNotFound}
}

func printList(ctx context.Context, writer io.Writer, source query.Source, list *viewstate.List, startPage int) error {
	request := list.StartAt(startPage)
	page, err := source.ListPage(ctx, request.Page, request.PerPage)
	list.ApplyResult(request, page, err)
	if list.Status() == viewstate.FetchFailed {
		fmt.Fprintf(writer, "Error: %s\n", query.Describe(list.Err()))
		return &ExitError{Code: ExitFetchFailed}
	}

	if term := list.SearchTerm(); list.EmptyMatch() && term != "" {
		fmt.Fprintln(writer, emptyMatchText(term))
	}
	for _, item := range list.FilteredItems() {
		fmt.Fprintf(writer, "%s  %-16s %s\n", itemNumber(item.ID), item.Name, strings.Join(item.TypeNames(), ", "))
	}

	info, _ := list.PageInfo()
	labels := make([]string, 0, 9)
	for _, control := range list.Controls() {
		switch {
		case control.Active:
			labels = append(labels, "["+control.Label()+"]")
		case control.Disabled && control.Kind != viewstate.ControlEllipsis:
			labels = append(labels, "("+control.Label()+")")
		default:
			labels = append(labels, control.Label())
		}
	}
	fmt.Fprintf(writer, "\n%s\nPage %d of %d (%d total)\n", strings.Join(labels, " "), list.CurrentPage(), info.LastPage, info.Total)
	return nil
}

func printDetail(ctx context.Context, writer io.Writer, source query.Source, detail *viewstate.Detail) error {
	if request, ok := detail.Request(); ok {
		var item *catalog.Item
		var err error
		if request.Key.ByName() {
			item, err = source.ItemByName(ctx, request.Key.Name)
		} else {
			item, err = source.ItemByID(ctx, request.Key.ID)
		}
		detail.Resolve(request, item, err)
	}

	switch detail.Status() {
	case viewstate.DetailNotFound:
		fmt.Fprintln(writer, query.Describe(detail.Err()))
		return &ExitError{Code: ExitNotFound}
	case viewstate.DetailError:
		fmt.Fprintf(writer, "Error: %s\n", query.Describe(detail.Err()))
		return &ExitError{Code: ExitFetchFailed}
	}

	item := *detail.Item()
	abilities := loadingAbilitiesText
	if len(item.Abilities) > 0 {
		abilities = strings.Join(item.Abilities, ", ")
	}
	fmt.Fprintf(writer, "%s %s\n", item.Name, itemNumber(item.ID))
	fmt.Fprintf(writer, "Types:     %s\n", strings.Join(item.TypeNames(), ", "))
	fmt.Fprintf(writer, "Height:    %s\n", formatHeight(item))
	fmt.Fprintf(writer, "Weight:    %s\n", formatWeight(item))
	fmt.Fprintf(writer, "Abilities: %s\n", abilities)
	if item.Cries != "" {
		fmt.Fprintf(writer, "Cry:       %s\n", item.Cries)
	}
	if item.ImageURL != "" {
		fmt.Fprintf(writer, "Image:     %s\n", item.ImageURL)
	}
	return nil
}
