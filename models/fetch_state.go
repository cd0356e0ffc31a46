// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FetchStatus is the lifecycle stage of one asynchronous request.
type FetchStatus int

const (
	FetchIdle FetchStatus = iota
	FetchLoading
	FetchSuccess
	FetchError
)

// String returns a lowercase name of the status.
func (s FetchStatus) String() string {
	switch s {
	case FetchIdle:
		return "idle"
	case FetchLoading:
		return "loading"
	case FetchSuccess:
		return "success"
	case FetchError:
		return "error"
	default:
		return "unknown"
	}
}

// FetchState holds exactly one of idle, loading, success(Models) or
// error(Message). Use the constructors to keep the fields consistent.
type FetchState struct {
	Status  FetchStatus
	Models  []Model
	Message string
}

func IdleState() FetchState {
	return FetchState{Status: FetchIdle}
}

func LoadingState() FetchState {
	return FetchState{Status: FetchLoading}
}

// SuccessState never stores a nil slice so that an empty result and a missing
// one render the same way.
func SuccessState(models []Model) FetchState {
	if models == nil {
		models = []Model{}
	}
	return FetchState{Status: FetchSuccess, Models: models}
}

func ErrorState(message string) FetchState {
	return FetchState{Status: FetchError, Message: message}
}
