package main

// @title Catalog Service API
// @version 1.0
// @description Coffee price comparison service: searches roastery product listings, groups them under standard coffees and computes price statistics
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
