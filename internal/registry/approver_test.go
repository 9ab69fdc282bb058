package registry_test

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/adapter"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/mocks"
	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/registry"
)

var (
	approver = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	verifier = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	minter   = common.HexToAddress("0x00000000000000000000000000000000000000cc")
)

const registryJSON = `{
	"version": 1,
	"approvers": ["0x00000000000000000000000000000000000000aa"],
	"verifiers": ["0x00000000000000000000000000000000000000bb"],
	"projects": [
		{"url": "https://github.com/ujjwalguptaofficial/jsstore", "minter": "0x00000000000000000000000000000000000000cc", "worth": "1000"}
	]
}`

func realUnmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name         string
		setupMocks   func(*mocks.MockFileSystem, *mocks.MockJSON)
		expectedErr  string // Error message to assert, empty means no error expected
		validateFunc func(t *testing.T, reg *registry.Registry)
	}{
		{
			name: "successful load with valid JSON",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.EXPECT().ReadFile("approvers.json").Return([]byte(registryJSON), nil)
				mockJSON.EXPECT().Unmarshal(gomock.Any(), gomock.Any()).DoAndReturn(realUnmarshal)
			},
			validateFunc: func(t *testing.T, reg *registry.Registry) {
				assert.True(t, reg.IsApprover(approver))
				assert.False(t, reg.IsApprover(verifier))
				assert.True(t, reg.IsVerifier(verifier))
				assert.False(t, reg.IsVerifier(approver))

				// URL variants resolve to the same project
				approval := reg.IsApprovedProject(domain.TokenIDFromURL("github.com/UjjwalGuptaOfficial/jsstore.git"))
				assert.True(t, approval.Approved())
				assert.Equal(t, minter, approval.Minter)
				assert.Equal(t, uint64(1000), approval.Worth.Uint64())
			},
		},
		{
			name: "unknown project is not approved",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.EXPECT().ReadFile("approvers.json").Return([]byte(`{}`), nil)
				mockJSON.EXPECT().Unmarshal(gomock.Any(), gomock.Any()).DoAndReturn(realUnmarshal)
			},
			validateFunc: func(t *testing.T, reg *registry.Registry) {
				approval := reg.IsApprovedProject(domain.TokenIDFromURL("github.com/a/b"))
				assert.False(t, approval.Approved())
				assert.True(t, approval.Worth.IsZero())
			},
		},
		{
			name: "file read error",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.EXPECT().ReadFile("approvers.json").Return(nil, assert.AnError)
			},
			expectedErr: "failed to read approver registry file",
		},
		{
			name: "JSON parse error",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				data := []byte(`invalid json`)
				mockFS.EXPECT().ReadFile("approvers.json").Return(data, nil)
				mockJSON.EXPECT().Unmarshal(data, gomock.Any()).Return(assert.AnError)
			},
			expectedErr: "failed to parse approver registry JSON",
		},
		{
			name: "project without url",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.EXPECT().ReadFile("approvers.json").Return([]byte(`{"projects":[{"url":" "}]}`), nil)
				mockJSON.EXPECT().Unmarshal(gomock.Any(), gomock.Any()).DoAndReturn(realUnmarshal)
			},
			expectedErr: "project without url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFS := mocks.NewMockFileSystem(ctrl)
			mockJSON := mocks.NewMockJSON(ctrl)
			tt.setupMocks(mockFS, mockJSON)

			reg, err := registry.Load(mockFS, mockJSON, "approvers.json")
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Nil(t, reg)
				return
			}
			require.NoError(t, err)
			tt.validateFunc(t, reg)
		})
	}
}

func TestRegistryMutationsArePersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFileSystem(ctrl)
	reg := registry.NewRegistry(mockFS, adapter.NewJSON(), "approvers.json")

	var written []byte
	mockFS.EXPECT().WriteFile("approvers.json", gomock.Any()).DoAndReturn(func(_ string, data []byte) error {
		written = data
		return nil
	}).Times(2)

	require.NoError(t, reg.ApproveProject("https://github.com/a/b/", minter, uint256.NewInt(5)))
	require.NoError(t, reg.SetApprover(approver, true))

	var data registry.ApproverData
	require.NoError(t, json.Unmarshal(written, &data))
	assert.Equal(t, []common.Address{approver}, data.Approvers)
	require.Len(t, data.Projects, 1)
	assert.Equal(t, "github.com/a/b", data.Projects[0].URL)
	assert.Equal(t, uint64(5), data.Projects[0].Worth.Uint64())
}

func TestRegistryMutationRolledBackOnWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := mocks.NewMockFileSystem(ctrl)
	mockFS.EXPECT().WriteFile(gomock.Any(), gomock.Any()).Return(assert.AnError)

	reg := registry.NewRegistry(mockFS, adapter.NewJSON(), "approvers.json")
	err := reg.SetVerifier(verifier, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write approver registry file")
	assert.False(t, reg.IsVerifier(verifier))
}

func TestInMemoryRegistry(t *testing.T) {
	reg := registry.NewRegistry(nil, adapter.NewJSON(), "")

	require.NoError(t, reg.SetVerifier(verifier, true))
	assert.True(t, reg.IsVerifier(verifier))
	require.NoError(t, reg.SetVerifier(verifier, false))
	assert.False(t, reg.IsVerifier(verifier))

	assert.ErrorIs(t, reg.ApproveProject("", minter, nil), domain.ErrEmptyProjectURL)
	assert.ErrorIs(t, reg.ApproveProject("github.com/a/b", common.Address{}, nil), domain.ErrZeroAddress)

	require.NoError(t, reg.ApproveProject("github.com/a/b", minter, nil))
	assert.True(t, reg.IsApprovedProject(domain.TokenIDFromURL("github.com/a/b")).Approved())
	require.NoError(t, reg.RevokeProject("github.com/a/b"))
	assert.False(t, reg.IsApprovedProject(domain.TokenIDFromURL("github.com/a/b")).Approved())
}
