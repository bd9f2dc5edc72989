package version

// Version はアプリケーションのバージョン
const Version = "1.0.0"
