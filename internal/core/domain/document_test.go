package domain

import "testing"

func TestTerminalStates(t *testing.T) {
	terminal := []ProcessingStatus{StatusCompleted, StatusOCRFailed, StatusGenAIFailed}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Fatalf("expected %s to be terminal", s)
		}
	}

	active := []ProcessingStatus{StatusPending, StatusOCRProcessing, StatusOCRCompleted, StatusGenAIProcessing}
	for _, s := range active {
		if s.Terminal() {
			t.Fatalf("expected %s to be non-terminal", s)
		}
	}
}

func TestFailedStates(t *testing.T) {
	if !StatusOCRFailed.Failed() || !StatusGenAIFailed.Failed() {
		t.Fatal("failure branches must report Failed")
	}
	if StatusCompleted.Failed() {
		t.Fatal("COMPLETED is not a failure")
	}
}

func TestAdvancesOnlyForward(t *testing.T) {
	pipeline := []ProcessingStatus{
		StatusPending,
		StatusOCRProcessing,
		StatusOCRCompleted,
		StatusGenAIProcessing,
		StatusCompleted,
	}
	for i := 0; i < len(pipeline)-1; i++ {
		if !pipeline[i].Advances(pipeline[i+1]) {
			t.Fatalf("expected %s -> %s to advance", pipeline[i], pipeline[i+1])
		}
		if pipeline[i+1].Advances(pipeline[i]) {
			t.Fatalf("expected %s -> %s not to advance", pipeline[i+1], pipeline[i])
		}
	}

	if !StatusOCRProcessing.Advances(StatusOCRFailed) {
		t.Fatal("expected OCR_PROCESSING -> OCR_FAILED to advance")
	}
	if !StatusGenAIProcessing.Advances(StatusGenAIFailed) {
		t.Fatal("expected GENAI_PROCESSING -> GENAI_FAILED to advance")
	}
	if StatusPending.Advances("SOMETHING_ELSE") {
		t.Fatal("unknown states must not advance")
	}
}

func TestKnownStatus(t *testing.T) {
	if !StatusPending.Known() {
		t.Fatal("PENDING must be known")
	}
	if ProcessingStatus("DONE").Known() {
		t.Fatal("DONE is not part of the enum")
	}
}

func TestDocumentUpdateEmpty(t *testing.T) {
	if !(DocumentUpdate{}).Empty() {
		t.Fatal("zero update must be empty")
	}
	title := "new"
	if (DocumentUpdate{Title: &title}).Empty() {
		t.Fatal("title update is not empty")
	}
	if (DocumentUpdate{CategoryIDs: []string{}}).Empty() {
		t.Fatal("explicit empty category list is an update")
	}
}

func TestCategoryIDs(t *testing.T) {
	doc := DocumentSummary{Categories: []Category{{ID: "a"}, {ID: "b"}}}
	ids := doc.CategoryIDs()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Fatalf("unexpected category ids: %v", ids)
	}
}
