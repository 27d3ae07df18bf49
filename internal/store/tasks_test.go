package store

import (
	"testing"
	"time"
)

func TestGroupTasksWithEvents(t *testing.T) {
	now := time.Now().UTC()
	t1 := Task{ID: 1, OwnerID: 7, Name: "write docs", CreatedOn: now}
	t2 := Task{ID: 2, OwnerID: 7, Name: "review", CreatedOn: now.Add(time.Minute)}
	e1 := Event{ID: 10, OwnerID: 7, TaskID: 2, DateBegan: now, Duration: 30}
	e2 := Event{ID: 11, OwnerID: 7, TaskID: 2, DateBegan: now.Add(time.Hour), Duration: 45}

	tests := []struct {
		name       string
		tasks      []Task
		events     []Event
		wantCounts []int
	}{
		{
			name:       "task without events keeps empty slice",
			tasks:      []Task{t1},
			events:     nil,
			wantCounts: []int{0},
		},
		{
			name:       "events attach to their task only",
			tasks:      []Task{t1, t2},
			events:     []Event{e1, e2},
			wantCounts: []int{0, 2},
		},
		{
			name:       "task appears once regardless of event count",
			tasks:      []Task{t2},
			events:     []Event{e1, e2},
			wantCounts: []int{2},
		},
		{
			name:       "events for unknown tasks are dropped",
			tasks:      []Task{t1},
			events:     []Event{{ID: 12, TaskID: 99}},
			wantCounts: []int{0},
		},
		{
			name:       "no tasks yields empty result",
			tasks:      nil,
			events:     []Event{e1},
			wantCounts: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := groupTasksWithEvents(tt.tasks, tt.events)
			if len(got) != len(tt.wantCounts) {
				t.Fatalf("got %d entries, want %d", len(got), len(tt.wantCounts))
			}
			for i, want := range tt.wantCounts {
				if got[i].Events == nil {
					t.Fatalf("entry %d: events slice is nil, want empty slice", i)
				}
				if len(got[i].Events) != want {
					t.Fatalf("entry %d: got %d events, want %d", i, len(got[i].Events), want)
				}
				if got[i].Task.ID != tt.tasks[i].ID {
					t.Fatalf("entry %d: task order changed", i)
				}
				for _, event := range got[i].Events {
					if event.TaskID != got[i].Task.ID {
						t.Fatalf("entry %d: foreign event %d attached", i, event.ID)
					}
				}
			}
		})
	}
}

func TestGroupTasksWithEventsTotals(t *testing.T) {
	now := time.Now().UTC()
	tasks := []Task{{ID: 5, Name: "deep work", CreatedOn: now}}
	events := []Event{
		{ID: 1, TaskID: 5, Duration: 30},
		{ID: 2, TaskID: 5, Duration: 45},
	}

	got := groupTasksWithEvents(tasks, events)
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}

	var total int64
	for _, event := range got[0].Events {
		total += event.Duration
	}
	if total != 75 {
		t.Fatalf("total duration = %d, want 75", total)
	}
}
