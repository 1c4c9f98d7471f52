// Package scaffold locates the external scaffold script for a language and
// template and runs it synchronously with the project name as its only
// argument. Scripts live at <root>/<language>/scaffold_<template>; the
// script, not this package, creates the project directory.
package scaffold
