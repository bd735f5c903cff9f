package vaultsdk

import (
	"context"
	"net/http"
	"strconv"
)

func groupPath(id int64) string      { return "/v1/groups/" + strconv.FormatInt(id, 10) }
func credentialPath(id int64) string { return "/v1/credentials/" + strconv.FormatInt(id, 10) }

func (s *Session) CreateGroup(ctx context.Context, name, description string) (*CreatedResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/groups", CreateGroupRequest{Name: name, Description: description})
	if err != nil {
		return nil, err
	}

	var out CreatedResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListGroups(ctx context.Context) ([]GroupResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/groups", nil)
	if err != nil {
		return nil, err
	}

	var out ListGroupsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Groups, nil
}

func (s *Session) ListGroupsWithCredentials(ctx context.Context) ([]GroupCredential, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/groups/credentials", nil)
	if err != nil {
		return nil, err
	}

	var out ListGroupCredentialsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (s *Session) UpdateGroup(ctx context.Context, id int64, req UpdateGroupRequest) (*GroupResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPatch, groupPath(id), req)
	if err != nil {
		return nil, err
	}

	var out GroupResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteGroup removes the group together with its credentials.
func (s *Session) DeleteGroup(ctx context.Context, id int64) error {
	resp, err := s.doAuthJSON(ctx, http.MethodDelete, groupPath(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (s *Session) ListCredentials(ctx context.Context, groupID int64) ([]CredentialSummary, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, groupPath(groupID)+"/credentials", nil)
	if err != nil {
		return nil, err
	}

	var out ListCredentialsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Credentials, nil
}

func (s *Session) CreateCredential(ctx context.Context, req CreateCredentialRequest) (*CreatedResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/credentials", req)
	if err != nil {
		return nil, err
	}

	var out CreatedResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateCredential(ctx context.Context, id int64, req UpdateCredentialRequest) (*CredentialResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPatch, credentialPath(id), req)
	if err != nil {
		return nil, err
	}

	var out CredentialResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteCredential(ctx context.Context, id int64) error {
	resp, err := s.doAuthJSON(ctx, http.MethodDelete, credentialPath(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// RevealSecret returns the plaintext secret of a credential.
func (s *Session) RevealSecret(ctx context.Context, id int64) (string, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, credentialPath(id)+"/secret", nil)
	if err != nil {
		return "", err
	}

	var out RevealSecretResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.Password, nil
}

func (s *Session) Search(ctx context.Context, req SearchRequest) ([]SearchMatch, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/credentials/search", req)
	if err != nil {
		return nil, err
	}

	var out SearchResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Matches, nil
}
