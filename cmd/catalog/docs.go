package main

// @title BookMyPanditJi Catalog API
// @version 1.0
// @description Catalog listing, booking pricing, visitor lists, registration wizards and the chat assistant

// @contact.name API Support
// @contact.email support@bookmypanditji.com

// @host localhost:8081
// @BasePath /
