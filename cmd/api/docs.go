package main

// @title Weather Widget API
// @version 1.0
// @description Searches a daily maximum temperature forecast by coordinates and renders it as a line chart.
// @BasePath /
// @schemes http https
