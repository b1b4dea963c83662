package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/breedwise/breedwise/internal/types"
)

func sessionIdentity() Identity {
	sid := uuid.NewString()
	return Identity{SessionID: &sid}
}

func TestIdentityValidate(t *testing.T) {
	uid := uuid.New()
	sid := "session-token"

	tests := []struct {
		name    string
		id      Identity
		wantErr bool
	}{
		{name: "user only", id: Identity{UserID: &uid}},
		{name: "session only", id: Identity{SessionID: &sid}},
		{name: "both set", id: Identity{UserID: &uid, SessionID: &sid}, wantErr: true},
		{name: "neither set", id: Identity{}, wantErr: true},
		{name: "empty session", id: Identity{SessionID: types.StringPtr("")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if tt.wantErr {
				var identityErr *InvalidIdentityError
				assert.ErrorAs(t, err, &identityErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSubmitPersistsValidatedResults(t *testing.T) {
	client := &fakeClient{response: fiveMatches(t, 95, 90, 85, 80, 75)}
	store := &fakeStore{catalog: namedCatalog("Breed A", "Breed B", "Breed C", "Breed D", "Breed E")}
	svc := NewService(NewRecommender(client), store)

	identity := sessionIdentity()
	submission, err := svc.Submit(context.Background(), identity, completeAnswers())
	require.NoError(t, err)

	require.Len(t, store.submissions, 1)
	assert.Equal(t, submission, store.submissions[0])
	assert.Len(t, submission.Results, MatchCount)
	assert.Equal(t, identity.SessionID, submission.SessionID)
	assert.Nil(t, submission.UserID)
}

func TestSubmitInvalidAnswersPersistsNothing(t *testing.T) {
	client := &fakeClient{response: fiveMatches(t, 95, 90, 85, 80, 75)}
	store := &fakeStore{catalog: namedCatalog("A")}
	svc := NewService(NewRecommender(client), store)

	answers := completeAnswers()
	answers.LivingSituation = ""

	_, err := svc.Submit(context.Background(), sessionIdentity(), answers)
	var invalidErr *InvalidQuizAnswerError
	require.ErrorAs(t, err, &invalidErr)

	assert.Zero(t, client.calls)
	assert.Empty(t, store.submissions)
}

func TestSubmitMalformedResponsePersistsNothing(t *testing.T) {
	store := &fakeStore{catalog: namedCatalog("A")}
	svc := NewService(NewRecommender(&fakeClient{response: fiveMatches(t, 150, 90, 85, 80, 75)}), store)

	_, err := svc.Submit(context.Background(), sessionIdentity(), completeAnswers())
	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)

	assert.Empty(t, store.submissions)
}

func TestSubmitCollaboratorDownPersistsNothing(t *testing.T) {
	store := &fakeStore{catalog: namedCatalog("A")}
	svc := NewService(NewRecommender(&fakeClient{err: errors.New("timeout")}), store)

	_, err := svc.Submit(context.Background(), sessionIdentity(), completeAnswers())
	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)

	assert.Empty(t, store.submissions)
}

func TestSubmitRejectsBothIdentities(t *testing.T) {
	client := &fakeClient{response: fiveMatches(t, 95, 90, 85, 80, 75)}
	store := &fakeStore{catalog: namedCatalog("A")}
	svc := NewService(NewRecommender(client), store)

	uid := uuid.New()
	sid := uuid.NewString()
	_, err := svc.Submit(context.Background(), Identity{UserID: &uid, SessionID: &sid}, completeAnswers())

	var identityErr *InvalidIdentityError
	require.ErrorAs(t, err, &identityErr)
	assert.Zero(t, client.calls)
}

func TestSubmitStoreWriteFailure(t *testing.T) {
	store := &fakeStore{
		catalog:   namedCatalog("A"),
		createErr: errors.New("connection reset"),
	}
	svc := NewService(NewRecommender(&fakeClient{response: fiveMatches(t, 95, 90, 85, 80, 75)}), store)

	_, err := svc.Submit(context.Background(), sessionIdentity(), completeAnswers())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to persist quiz submission")
}
