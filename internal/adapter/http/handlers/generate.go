package handlers

//go:generate mockgen -source=../../../usecase/quote_usecase.go -destination=mocks/quote_usecase_mock.go -package=mocks
//go:generate mockgen -source=../../../usecase/provider_status_usecase.go -destination=mocks/provider_status_usecase_mock.go -package=mocks
//go:generate mockgen -source=../../../usecase/agreement_usecase.go -destination=mocks/agreement_usecase_mock.go -package=mocks
//go:generate mockgen -source=../../../usecase/request_lifecycle_usecase.go -destination=mocks/request_lifecycle_usecase_mock.go -package=mocks
//go:generate mockgen -source=../../../usecase/workflow_usecase.go -destination=mocks/workflow_usecase_mock.go -package=mocks
