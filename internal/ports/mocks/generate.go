//go:generate mockgen -source=../order_repository.go    -destination=./mock_order_repository.go    -package=mocks
//go:generate mockgen -source=../product_repository.go  -destination=./mock_product_repository.go  -package=mocks
//go:generate mockgen -source=../order_feed.go          -destination=./mock_order_feed.go          -package=mocks
//go:generate mockgen -source=../session.go             -destination=./mock_session.go             -package=mocks
//go:generate mockgen -source=../image_store.go         -destination=./mock_image_store.go         -package=mocks
//go:generate mockgen -source=../validator.go           -destination=./mock_validator.go           -package=mocks
//go:generate mockgen -source=../order_query_service.go -destination=./mock_order_query_service.go -package=mocks
//go:generate mockgen -source=../product_creator.go     -destination=./mock_product_creator.go     -package=mocks

package mocks
