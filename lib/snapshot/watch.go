// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package snapshot

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

// settleDelay lets a burst of events for one replacement (write,
// close, rename) finish before the file is read.
const settleDelay = 50 * time.Millisecond

// Watch reloads path into source whenever the file is rewritten or
// renamed into place. It watches the parent directory, so atomic
// replacement by rename (what WriteFile does) is seen. A file that
// fails to decode is logged and skipped; source keeps serving the
// previous snapshot.
//
// The returned stop function ends the watch. It is safe to call more
// than once.
func Watch(path string, source *Source, logger *slog.Logger) (stop func(), err error) {
	if logger == nil {
		logger = slog.Default()
	}
	absolutePath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("snapshot: inotify init: %w", err)
	}
	if _, err := unix.InotifyAddWatch(fd, filepath.Dir(absolutePath), unix.IN_CLOSE_WRITE|unix.IN_MOVED_TO); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("snapshot: watching %s: %w", filepath.Dir(absolutePath), err)
	}

	stopChannel := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		watchLoop(fd, absolutePath, source, logger, stopChannel)
	}()

	stopped := false
	return func() {
		if stopped {
			return
		}
		stopped = true
		close(stopChannel)
		<-done
	}, nil
}

func watchLoop(fd int, path string, source *Source, logger *slog.Logger, stopChannel <-chan struct{}) {
	defer unix.Close(fd)
	filename := filepath.Base(path)
	buffer := make([]byte, 4096)

	for {
		select {
		case <-stopChannel:
			return
		default:
		}

		// Poll with a timeout so the stop channel is checked
		// regularly.
		descriptors := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		count, err := unix.Poll(descriptors, 100)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			logger.Error("snapshot watch stopped", "path", path, "error", err)
			return
		}
		if count == 0 {
			continue
		}

		read, err := unix.Read(fd, buffer)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			logger.Error("snapshot watch stopped", "path", path, "error", err)
			return
		}
		if !eventsName(buffer[:read], filename) {
			continue
		}

		time.Sleep(settleDelay)
		drain(fd, buffer)

		snapshot, err := ReadFile(path)
		if err != nil {
			logger.Warn("snapshot reload skipped", "path", path, "error", err)
			continue
		}
		source.Replace(snapshot)
		logger.Info("snapshot reloaded", "path", path, "items", len(snapshot.Items))
	}
}

// eventsName reports whether any inotify event in buffer names
// filename. Events are a packed sequence of inotify_event headers,
// each followed by a NUL-padded name of the length in the header.
func eventsName(buffer []byte, filename string) bool {
	offset := 0
	for offset+unix.SizeofInotifyEvent <= len(buffer) {
		nameLength := int(binary.NativeEndian.Uint32(buffer[offset+12 : offset+16]))
		end := offset + unix.SizeofInotifyEvent + nameLength
		if end > len(buffer) {
			return false
		}
		name := buffer[offset+unix.SizeofInotifyEvent : end]
		for index, character := range name {
			if character == 0 {
				name = name[:index]
				break
			}
		}
		if string(name) == filename {
			return true
		}
		offset = end
	}
	return false
}

func drain(fd int, buffer []byte) {
	for {
		if _, err := unix.Read(fd, buffer); err != nil {
			return
		}
	}
}
