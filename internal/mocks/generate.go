package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name TransferRoster --dir ../usecase --output usecase --outpkg usecasemock --filename transfer_roster_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name MatchRecorder --dir ../usecase --output usecase --outpkg usecasemock --filename match_recorder_mock.go
