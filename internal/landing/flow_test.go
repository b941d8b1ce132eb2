package landing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/yungbote/bookfront/internal/domain"
	"github.com/yungbote/bookfront/internal/platform/logger"
)

func newTestResolver(conv Converter) *Resolver {
	return NewResolver(logger.Nop(), conv, staticLinks{})
}

func TestSubmitRequestCarriesOnlyRequiredFields(t *testing.T) {
	t.Parallel()

	t.Run("names asked", func(t *testing.T) {
		t.Parallel()
		conv := &fakeConverter{resp: &types.ConversionResponse{Success: true}}
		lp := page(types.PageTypeEmailSignup)
		lp.EmailSignupPage.AskFirstName = true
		lp.EmailSignupPage.AskLastName = true

		out := newTestResolver(conv).Submit(context.Background(), lp,
			Submission{Email: "a@b.co", FirstName: "A", LastName: "B"}, &recordingEffects{})

		require.Equal(t, StateSucceeded, out.State)
		assert.Equal(t, "lp1", conv.pageID)
		assert.JSONEq(t, `{"email":"a@b.co","firstName":"A","lastName":"B"}`, string(conv.body))
	})

	t.Run("restricted sends email only", func(t *testing.T) {
		t.Parallel()
		conv := &fakeConverter{resp: &types.ConversionResponse{Success: true}}

		out := newTestResolver(conv).Submit(context.Background(), page(types.PageTypeRestricted),
			Submission{Email: "a@b.co", FirstName: "ignored"}, &recordingEffects{})

		require.Equal(t, StateSucceeded, out.State)
		assert.JSONEq(t, `{"email":"a@b.co"}`, string(conv.body))
	})
}

func TestSubmitNeedsConfirmationDoesNotNavigate(t *testing.T) {
	t.Parallel()

	conv := &fakeConverter{resp: &types.ConversionResponse{
		Success: true,
		Data:    &types.ConversionResult{NeedsConfirmation: true, DownloadURL: "https://cdn.test/dune.epub"},
	}}
	fx := &recordingEffects{}

	out := newTestResolver(conv).Submit(context.Background(), page(types.PageTypeEmailSignup),
		Submission{Email: "a@b.co"}, fx)

	assert.Equal(t, StateConfirmationPending, out.State)
	assert.Empty(t, fx.effects)
	assert.Empty(t, out.NavigatedTo)
}

func TestSubmitNavigatesExactlyOnce(t *testing.T) {
	t.Parallel()

	conv := &fakeConverter{resp: &types.ConversionResponse{
		Success: true,
		Data: &types.ConversionResult{
			DownloadURL: "https://cdn.test/dune.epub",
			RedirectURL: "https://example.test/thanks",
		},
	}}
	fx := &recordingEffects{}

	out := newTestResolver(conv).Submit(context.Background(), page(types.PageTypeRestricted),
		Submission{Email: "a@b.co"}, fx)

	require.Equal(t, StateSucceeded, out.State)
	require.Len(t, fx.effects, 1)
	assert.Equal(t, effect{kind: "navigate", url: "https://cdn.test/dune.epub"}, fx.effects[0])
	assert.Nil(t, out.Success)
}

func TestSubmitFallsBackToRedirectURL(t *testing.T) {
	t.Parallel()

	conv := &fakeConverter{resp: &types.ConversionResponse{
		Success: true,
		Data:    &types.ConversionResult{RedirectURL: "https://example.test/thanks"},
	}}
	fx := &recordingEffects{}

	out := newTestResolver(conv).Submit(context.Background(), page(types.PageTypeRestricted),
		Submission{Email: "a@b.co"}, fx)

	require.Len(t, fx.effects, 1)
	assert.Equal(t, "https://example.test/thanks", out.NavigatedTo)
}

func TestSubmitWithoutTargetShowsSuccessMessage(t *testing.T) {
	t.Parallel()

	lp := page(types.PageTypeEmailSignup)
	lp.EmailSignupPage.ThankYou = &types.ThankYouSettings{Message: "Welcome aboard."}
	conv := &fakeConverter{resp: &types.ConversionResponse{Success: true, Data: &types.ConversionResult{}}}
	fx := &recordingEffects{}

	out := newTestResolver(conv).Submit(context.Background(), lp, Submission{Email: "a@b.co"}, fx)

	require.Equal(t, StateSucceeded, out.State)
	require.NotNil(t, out.Success)
	assert.Equal(t, "Check Your Email!", out.Success.Title)
	assert.Equal(t, "Welcome aboard.", out.Success.Note)
	assert.Empty(t, fx.effects)
}

func TestSubmitFailureKeepsValues(t *testing.T) {
	t.Parallel()

	t.Run("server message", func(t *testing.T) {
		t.Parallel()
		conv := &fakeConverter{err: &messageErr{msg: "This page has expired"}}
		out := newTestResolver(conv).Submit(context.Background(), page(types.PageTypeRestricted),
			Submission{Email: " a@b.co "}, &recordingEffects{})

		assert.Equal(t, StateFailed, out.State)
		assert.Equal(t, "This page has expired", out.Error)
		assert.Equal(t, "a@b.co", out.Submission.Email)
		assert.True(t, errors.Is(out.Err, ErrSubmissionFailed))
	})

	t.Run("transport error", func(t *testing.T) {
		t.Parallel()
		conv := &fakeConverter{err: errors.New("dial tcp: refused")}
		out := newTestResolver(conv).Submit(context.Background(), page(types.PageTypeRestricted),
			Submission{Email: "a@b.co"}, &recordingEffects{})

		assert.Equal(t, FallbackSubmitError, out.Error)
	})
}

func TestSubmitValidatesRequiredFields(t *testing.T) {
	t.Parallel()

	lp := page(types.PageTypeEmailSignup)
	lp.EmailSignupPage.AskFirstName = true
	conv := &fakeConverter{}

	out := newTestResolver(conv).Submit(context.Background(), lp, Submission{Email: "a@b.co"}, &recordingEffects{})

	assert.Equal(t, StateFailed, out.State)
	assert.Equal(t, "Please enter your first name.", out.Error)
	assert.Zero(t, conv.calls)
}

func TestSimpleDownload(t *testing.T) {
	t.Parallel()

	t.Run("download opens chooser", func(t *testing.T) {
		t.Parallel()
		conv := &fakeConverter{resp: &types.ConversionResponse{
			Success: true,
			Data:    &types.ConversionResult{ConversionType: types.ConversionTypeDownload},
		}}
		out := newTestResolver(conv).SimpleDownload(context.Background(), page(types.PageTypeSimpleDownload))

		assert.True(t, out.ShowReaderChooser)
		assert.JSONEq(t, `{}`, string(conv.body))
	})

	t.Run("other type is ignored", func(t *testing.T) {
		t.Parallel()
		conv := &fakeConverter{resp: &types.ConversionResponse{
			Success: true,
			Data:    &types.ConversionResult{ConversionType: "signup"},
		}}
		out := newTestResolver(conv).SimpleDownload(context.Background(), page(types.PageTypeSimpleDownload))

		assert.Equal(t, StateIdle, out.State)
		assert.False(t, out.ShowReaderChooser)
	})

	t.Run("failure", func(t *testing.T) {
		t.Parallel()
		conv := &fakeConverter{err: errors.New("boom")}
		out := newTestResolver(conv).SimpleDownload(context.Background(), page(types.PageTypeSimpleDownload))

		assert.Equal(t, StateFailed, out.State)
		assert.Equal(t, FallbackDownloadError, out.Error)
	})

	t.Run("not a simple download page", func(t *testing.T) {
		t.Parallel()
		conv := &fakeConverter{}
		out := newTestResolver(conv).SimpleDownload(context.Background(), page(types.PageTypeEmailSignup))

		assert.Equal(t, StateIdle, out.State)
		assert.Zero(t, conv.calls)
	})
}

func TestDirectDownloadNavigatesToConversionLink(t *testing.T) {
	t.Parallel()

	fx := &recordingEffects{}
	out := newTestResolver(&fakeConverter{}).DirectDownload(page(types.PageTypeUniversalLink), fx)

	require.Len(t, fx.effects, 1)
	assert.Equal(t, "http://api.test/api/landing-pages/public/lp1/conversion", fx.effects[0].url)
	assert.Equal(t, fx.effects[0].url, out.NavigatedTo)
}

func TestDirectDownloadSkipsOtherEntryModes(t *testing.T) {
	t.Parallel()

	for _, pt := range []types.PageType{types.PageTypeEmailSignup, types.PageTypeRestricted, types.PageTypeSimpleDownload} {
		fx := &recordingEffects{}
		out := newTestResolver(&fakeConverter{}).DirectDownload(page(pt), fx)
		if len(fx.effects) != 0 {
			t.Fatalf("unexpected effects for %s: got=%v want=none", pt, fx.effects)
		}
		assert.Equal(t, StateIdle, out.State)
	}
}

func TestSuccessMessageFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Access Granted!", SuccessMessageFor(page(types.PageTypeRestricted)).Title)
	assert.Equal(t, "Download Starting!", SuccessMessageFor(page(types.PageTypeSimpleDownload)).Title)
	assert.Equal(t, "Success!", SuccessMessageFor(page(types.PageTypeUniversalLink)).Title)
	assert.Equal(t, "Success!", SuccessMessageFor(nil).Title)
}
